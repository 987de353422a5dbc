package movie

import (
	"context"
	"net/http"

	"moviefinder/errs"
)

type Service interface {
	Search(ctx context.Context, title string) (Record, error)
}

// Provider fetches metadata for a title from the upstream movie API.
type Provider interface {
	FindByTitle(ctx context.Context, title string) (Record, error)
}

type Usecase struct {
	p Provider
}

func NewUsecase(p Provider) *Usecase {
	return &Usecase{p: p}
}

// Search looks the title up once. Any provider reported error becomes a 404
// carrying the provider's text, whatever the provider meant by it.
func (uc *Usecase) Search(ctx context.Context, title string) (Record, error) {
	rec, err := uc.p.FindByTitle(ctx, title)
	if err != nil {
		return nil, err
	}

	if msg, failed := rec.ProviderError(); failed {
		return nil, errs.New(http.StatusNotFound, msg)
	}

	return rec, nil
}
