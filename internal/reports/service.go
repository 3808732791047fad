// Package reports derives read-only views over the registries: the monthly
// birthday list and the dashboard counters.
package reports

import (
	"context"
	"fmt"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"legalflow/internal/client/models"
	"legalflow/pkg/domain"
	dErrors "legalflow/pkg/domain-errors"
)

const (
	RoleClient         = "Cliente"
	RoleRepresentative = "Representante"
)

var monthNames = [...]string{
	"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
	"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
}

// Birthday is one person whose birth date falls in the requested month.
type Birthday struct {
	ClientID  string      `json:"clientId"`
	Name      string      `json:"name"`
	Type      string      `json:"type"`
	BirthDate domain.Date `json:"birthDate"`
	Label     string      `json:"date"`
}

// Summary holds the dashboard counters.
type Summary struct {
	Clients            int   `json:"clients"`
	Cases              int   `json:"cases"`
	Lawyers            int   `json:"lawyers"`
	Partners           int   `json:"partners"`
	Suppliers          int   `json:"suppliers"`
	DocumentsGenerated int64 `json:"documentsGenerated"`
}

type ClientLister interface {
	List(ctx context.Context) ([]models.Client, error)
}

// DocumentCounter reports documents produced since startup.
type DocumentCounter interface {
	Generated() int64
}

// Count returns the size of one registry.
type Count func(ctx context.Context) (int, error)

// CountOf adapts any registry with a List method.
func CountOf[T any](l interface {
	List(ctx context.Context) ([]T, error)
}) Count {
	return func(ctx context.Context) (int, error) {
		recs, err := l.List(ctx)
		return len(recs), err
	}
}

// Sources are the registries a report reads from. Nil counts report zero.
type Sources struct {
	Clients   ClientLister
	Cases     Count
	Lawyers   Count
	Partners  Count
	Suppliers Count
	Documents DocumentCounter
}

type Service struct {
	src Sources
}

func New(src Sources) *Service {
	return &Service{src: src}
}

// Birthdays lists individual clients and representatives born in month,
// ordered by day and then name. Records without a readable birth date are
// skipped.
func (s *Service) Birthdays(ctx context.Context, month time.Month) ([]Birthday, error) {
	if month < time.January || month > time.December {
		return nil, dErrors.New(dErrors.CodeBadRequest, fmt.Sprintf("invalid month %d", month))
	}
	clients, err := s.src.Clients.List(ctx)
	if err != nil {
		return nil, err
	}

	out := []Birthday{}
	add := func(clientID, name, role, raw string) {
		d, err := domain.ParseDate(raw)
		if err != nil || d.IsZero() || d.Month() != month {
			return
		}
		out = append(out, Birthday{
			ClientID:  clientID,
			Name:      name,
			Type:      role,
			BirthDate: d,
			Label:     fmt.Sprintf("%02d de %s", d.Day(), monthNames[month-1]),
		})
	}
	for _, c := range clients {
		if ind, ok := c.Individual(); ok {
			add(c.ID, ind.NomeCompleto, RoleClient, ind.DataNascimento)
		}
		if c.Representative != nil {
			add(c.ID, c.Representative.NomeCompleto, RoleRepresentative, c.Representative.DataNascimento)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].BirthDate.Day() != out[j].BirthDate.Day() {
			return out[i].BirthDate.Day() < out[j].BirthDate.Day()
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

// Summary counts every registry concurrently.
func (s *Service) Summary(ctx context.Context) (Summary, error) {
	var sum Summary
	g, gctx := errgroup.WithContext(ctx)
	count := func(fn Count, dst *int) {
		if fn == nil {
			return
		}
		g.Go(func() error {
			n, err := fn(gctx)
			*dst = n
			return err
		})
	}
	if s.src.Clients != nil {
		count(CountOf[models.Client](s.src.Clients), &sum.Clients)
	}
	count(s.src.Cases, &sum.Cases)
	count(s.src.Lawyers, &sum.Lawyers)
	count(s.src.Partners, &sum.Partners)
	count(s.src.Suppliers, &sum.Suppliers)
	if err := g.Wait(); err != nil {
		return Summary{}, err
	}
	if s.src.Documents != nil {
		sum.DocumentsGenerated = s.src.Documents.Generated()
	}
	return sum, nil
}
