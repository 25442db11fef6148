package staging

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/gophroster/internal/logging"
	"github.com/dmitrijs2005/gophroster/internal/models"
	"github.com/dmitrijs2005/gophroster/internal/repositories/records"
)

type Protocol struct {
	repo    records.Repository
	confirm Confirmer
	log     logging.Logger
}

func NewProtocol(repo records.Repository, confirm Confirmer, log logging.Logger) *Protocol {
	if log == nil {
		log = logging.Nop()
	}
	return &Protocol{repo: repo, confirm: confirm, log: log}
}

// Create shows rec as the preview and stores it under its user_id when
// confirmed.
func (p *Protocol) Create(ctx context.Context, rec models.Record) (Outcome, error) {
	id, err := rec.ID()
	if err != nil {
		return OutcomeCanceled, fmt.Errorf("create: %w", err)
	}
	key := models.Key(id)

	ok, err := p.confirm.ConfirmChanges(ctx, rec.Clone())
	if err != nil {
		return OutcomeCanceled, fmt.Errorf("confirm create: %w", err)
	}
	if !ok {
		p.log.Info(ctx, "create declined", "key", key)
		return OutcomeCanceled, nil
	}

	if err := p.repo.Set(ctx, key, rec); err != nil {
		return OutcomeCanceled, fmt.Errorf("create %s: %w", key, err)
	}
	p.log.Info(ctx, "record created", "key", key)
	return OutcomeCommitted, nil
}

// Update re-reads the stored record, previews changes applied to it and, when
// confirmed, sends only changes to the store. It returns the previewed record.
// A missing record is reported as common.ErrorNotFound without prompting.
func (p *Protocol) Update(ctx context.Context, id int64, changes models.Changes) (models.Record, Outcome, error) {
	key := models.Key(id)

	existing, err := p.repo.Get(ctx, key)
	if err != nil {
		return nil, OutcomeCanceled, fmt.Errorf("load %s: %w", key, err)
	}

	preview := StageUpdate(existing, changes)
	ok, err := p.confirm.ConfirmChanges(ctx, preview.Clone())
	if err != nil {
		return preview, OutcomeCanceled, fmt.Errorf("confirm update: %w", err)
	}
	if !ok {
		p.log.Info(ctx, "update declined", "key", key)
		return preview, OutcomeCanceled, nil
	}

	if err := p.repo.Update(ctx, key, changes); err != nil {
		return preview, OutcomeCanceled, fmt.Errorf("update %s: %w", key, err)
	}
	p.log.Info(ctx, "record updated", "key", key, "fields", len(changes))
	return preview, OutcomeCommitted, nil
}

// Delete removes the record after an explicit confirmation.
func (p *Protocol) Delete(ctx context.Context, id int64) (Outcome, error) {
	key := models.Key(id)

	ok, err := p.confirm.ConfirmDelete(ctx, id)
	if err != nil {
		return OutcomeCanceled, fmt.Errorf("confirm delete: %w", err)
	}
	if !ok {
		p.log.Info(ctx, "delete declined", "key", key)
		return OutcomeCanceled, nil
	}

	if err := p.repo.Delete(ctx, key); err != nil {
		return OutcomeCanceled, fmt.Errorf("delete %s: %w", key, err)
	}
	p.log.Info(ctx, "record deleted", "key", key)
	return OutcomeCommitted, nil
}
