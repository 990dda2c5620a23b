package usecase

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"eisen_qms/internal/domain"
	"eisen_qms/internal/domain/entities"
	"eisen_qms/internal/domain/rules"
	"eisen_qms/internal/usecase/interfaces"
)

type IClientUseCase interface {
	Create(ctx context.Context, c entities.Client) (entities.Client, error)
	GetByID(ctx context.Context, id string) (entities.Client, error)
	List(ctx context.Context) ([]entities.Client, error)
	UpdateContact(ctx context.Context, id string, upd rules.ContactUpdate) (entities.Client, error)
	SetStatus(ctx context.Context, id string, status entities.ClientStatus) (entities.Client, error)
}

type ClientUseCase struct {
	repo interfaces.IClientRepository
	log  *zap.Logger
	now  func() time.Time
}

var _ IClientUseCase = (*ClientUseCase)(nil)

func NewClientUseCase(repo interfaces.IClientRepository, log *zap.Logger) *ClientUseCase {
	return &ClientUseCase{repo: repo, log: log.Named("clients"), now: time.Now}
}

func (u *ClientUseCase) Create(ctx context.Context, c entities.Client) (entities.Client, error) {
	c.ID = strings.TrimSpace(c.ID)
	if c.ID == "" {
		c.ID = newID("CLI")
	}
	if c.Status == "" {
		c.Status = entities.ClientStatusActivo
	}
	if err := rules.ValidateClient(c); err != nil {
		return entities.Client{}, err
	}
	c.CreatedAt = u.now().UTC()

	if err := ensureUnused(ctx, u.repo.GetByID, func(e entities.Client) string { return e.ID }, c.ID, "client id"); err != nil {
		return entities.Client{}, err
	}
	if err := u.repo.Save(ctx, c); err != nil {
		u.log.Error("failed saving client", zap.String("client_id", c.ID), zap.Error(err))
		return entities.Client{}, err
	}
	u.log.Info("client created", zap.String("client_id", c.ID))
	return c, nil
}

func (u *ClientUseCase) GetByID(ctx context.Context, id string) (entities.Client, error) {
	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Client{}, err
	}
	if c.ID == "" {
		return entities.Client{}, domain.NewNotFoundError("cliente", id)
	}
	return c, nil
}

func (u *ClientUseCase) List(ctx context.Context) ([]entities.Client, error) {
	clients, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return sortByID(clients, func(c entities.Client) string { return c.ID }), nil
}

func (u *ClientUseCase) UpdateContact(ctx context.Context, id string, upd rules.ContactUpdate) (entities.Client, error) {
	c, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Client{}, err
	}
	c, err = rules.UpdateClientContact(c, upd)
	if err != nil {
		return entities.Client{}, err
	}
	if err := u.repo.UpdateContact(ctx, c); err != nil {
		return entities.Client{}, err
	}
	return c, nil
}

func (u *ClientUseCase) SetStatus(ctx context.Context, id string, status entities.ClientStatus) (entities.Client, error) {
	c, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Client{}, err
	}
	c, err = rules.SetClientStatus(c, status)
	if err != nil {
		return entities.Client{}, err
	}
	if err := u.repo.UpdateStatus(ctx, c.ID, c.Status); err != nil {
		return entities.Client{}, err
	}
	u.log.Info("client status changed", zap.String("client_id", c.ID), zap.String("estado", string(c.Status)))
	return c, nil
}
