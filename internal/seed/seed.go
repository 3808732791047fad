// Package seed loads demo records into empty registries.
package seed

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	casemodels "legalflow/internal/cases/models"
	clientmodels "legalflow/internal/client/models"
	"legalflow/internal/lawyers"
	"legalflow/internal/partners"
	"legalflow/internal/settings"
	"legalflow/internal/suppliers"
)

//go:embed seed.yaml
var Default []byte

// Creator is the write side of a registry.
type Creator[T any] interface {
	Create(ctx context.Context, rec T) (T, error)
}

// ProcessCreator attaches a process to a case.
type ProcessCreator interface {
	CreateProcess(ctx context.Context, caseID string, p casemodels.Process) (casemodels.Process, error)
}

// Targets are the registries the fixture is written to. Records go through
// the same services as API writes, except expenses, which have no service.
type Targets struct {
	Clients      Creator[clientmodels.Client]
	Cases        Creator[casemodels.Case]
	Processes    ProcessCreator
	Lawyers      Creator[lawyers.Lawyer]
	Partners     Creator[partners.Partner]
	Suppliers    Creator[suppliers.Supplier]
	Expenses     Creator[suppliers.Expense]
	Holidays     Creator[settings.Holiday]
	ProcessTypes Creator[settings.ProcessType]
}

type record = map[string]any

type fixture struct {
	Lawyers      []record       `yaml:"lawyers"`
	Partners     []record       `yaml:"partners"`
	Holidays     []record       `yaml:"holidays"`
	ProcessTypes []record       `yaml:"processTypes"`
	Clients      []clientEntry  `yaml:"clients"`
	Cases        []caseEntry    `yaml:"cases"`
	Suppliers    []supplierItem `yaml:"suppliers"`
}

type clientEntry struct {
	Key    string `yaml:"key"`
	Record record `yaml:"record"`
}

type caseEntry struct {
	Client    string   `yaml:"client"`
	Record    record   `yaml:"record"`
	Processes []record `yaml:"processes"`
}

type supplierItem struct {
	Record   record   `yaml:"record"`
	Expenses []record `yaml:"expenses"`
}

// ReadFile returns the fixture at path, or Default when path is empty.
func ReadFile(path string) ([]byte, error) {
	if path == "" {
		return Default, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return data, nil
}

// Load parses data and writes every record. Independent sections are written
// concurrently; records within a section keep file order. Clients, cases and
// processes are written in that order since each refers to the previous.
func Load(ctx context.Context, data []byte, t Targets, logger *slog.Logger) error {
	var f fixture
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return fmt.Errorf("parse seed file: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return createAll(gctx, "lawyers", f.Lawyers, t.Lawyers) })
	g.Go(func() error { return createAll(gctx, "partners", f.Partners, t.Partners) })
	g.Go(func() error { return createAll(gctx, "holidays", f.Holidays, t.Holidays) })
	g.Go(func() error { return createAll(gctx, "processTypes", f.ProcessTypes, t.ProcessTypes) })
	g.Go(func() error { return loadSuppliers(gctx, f.Suppliers, t) })
	g.Go(func() error { return loadClientsAndCases(gctx, f.Clients, f.Cases, t) })
	if err := g.Wait(); err != nil {
		return err
	}

	if logger != nil {
		logger.InfoContext(ctx, "demo data loaded",
			"clients", len(f.Clients),
			"cases", len(f.Cases),
			"lawyers", len(f.Lawyers),
			"partners", len(f.Partners),
			"suppliers", len(f.Suppliers),
			"holidays", len(f.Holidays),
			"process_types", len(f.ProcessTypes),
		)
	}
	return nil
}

func loadSuppliers(ctx context.Context, items []supplierItem, t Targets) error {
	for i, item := range items {
		sup, err := create(ctx, item.Record, t.Suppliers)
		if err != nil {
			return fmt.Errorf("suppliers[%d]: %w", i, err)
		}
		for j, raw := range item.Expenses {
			exp, err := decode[suppliers.Expense](raw)
			if err != nil {
				return fmt.Errorf("suppliers[%d].expenses[%d]: %w", i, j, err)
			}
			exp.SupplierID = sup.ID
			if _, err := t.Expenses.Create(ctx, exp); err != nil {
				return fmt.Errorf("suppliers[%d].expenses[%d]: %w", i, j, err)
			}
		}
	}
	return nil
}

func loadClientsAndCases(ctx context.Context, clients []clientEntry, cases []caseEntry, t Targets) error {
	ids := make(map[string]string, len(clients))
	for i, entry := range clients {
		c, err := create(ctx, entry.Record, t.Clients)
		if err != nil {
			return fmt.Errorf("clients[%d]: %w", i, err)
		}
		if entry.Key != "" {
			ids[entry.Key] = c.ID
		}
	}
	for i, entry := range cases {
		clientID, ok := ids[entry.Client]
		if !ok {
			return fmt.Errorf("cases[%d]: unknown client %q", i, entry.Client)
		}
		rec, err := decode[casemodels.Case](entry.Record)
		if err != nil {
			return fmt.Errorf("cases[%d]: %w", i, err)
		}
		rec.ClienteID = clientID
		created, err := t.Cases.Create(ctx, rec)
		if err != nil {
			return fmt.Errorf("cases[%d]: %w", i, err)
		}
		for j, raw := range entry.Processes {
			p, err := decode[casemodels.Process](raw)
			if err != nil {
				return fmt.Errorf("cases[%d].processes[%d]: %w", i, j, err)
			}
			if _, err := t.Processes.CreateProcess(ctx, created.ID, p); err != nil {
				return fmt.Errorf("cases[%d].processes[%d]: %w", i, j, err)
			}
		}
	}
	return nil
}

func createAll[T any](ctx context.Context, section string, raws []record, c Creator[T]) error {
	for i, raw := range raws {
		if _, err := create(ctx, raw, c); err != nil {
			return fmt.Errorf("%s[%d]: %w", section, i, err)
		}
	}
	return nil
}

func create[T any](ctx context.Context, raw record, c Creator[T]) (T, error) {
	rec, err := decode[T](raw)
	if err != nil {
		return rec, err
	}
	return c.Create(ctx, rec)
}

// decode moves a YAML mapping into a model through its JSON form, so the
// fixture uses the same field names as the API.
func decode[T any](raw record) (T, error) {
	var out T
	data, err := json.Marshal(raw)
	if err != nil {
		return out, fmt.Errorf("encode record: %w", err)
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&out); err != nil {
		return out, fmt.Errorf("decode record: %w", err)
	}
	return out, nil
}
