// Package form keeps the editable state of a client form. Both variants and
// the representative sub-form stay in memory while hidden, so switching the
// client type or the representative flag never discards typed values.
package form

import (
	"fmt"

	"legalflow/internal/address"
	"legalflow/internal/client/models"
	"legalflow/internal/forms"
	dErrors "legalflow/pkg/domain-errors"
)

// Form is the state behind one client create or edit screen.
type Form struct {
	clientType        models.Kind
	individual        models.Individual
	legalEntity       models.LegalEntity
	hasRepresentative bool
	representative    models.Representative
	repAddress        address.Address
	attachments       *forms.List[models.Attachment]
	repAttachments    *forms.List[models.Attachment]
}

// New returns an empty form with the defaults of a new individual client.
func New() *Form {
	f := &Form{
		clientType:     models.KindIndividual,
		attachments:    forms.NewList[models.Attachment](),
		repAttachments: forms.NewList[models.Attachment](),
	}
	f.individual.Genero = "Não informar"
	f.individual.EstadoCivil = "Solteiro(a)"
	return f
}

// FromClient loads a stored client for editing.
func FromClient(c models.Client) *Form {
	return FromInput(c.Clone().Input())
}

// FromInput loads a submitted payload. Blocks of the inactive variant and a
// switched-off representative are kept as typed.
func FromInput(in models.Input) *Form {
	f := New()
	if in.ClientType != "" {
		f.clientType = in.ClientType
	}
	if in.Individual != nil {
		f.individual = *in.Individual
	}
	if in.LegalEntity != nil {
		f.legalEntity = *in.LegalEntity
	}
	f.hasRepresentative = in.HasRepresentative
	if in.Representative != nil {
		f.representative = *in.Representative
		if in.Representative.Endereco != nil {
			f.repAddress = *in.Representative.Endereco
		}
		f.representative.Endereco = nil
		f.repAttachments = forms.NewList(in.Representative.Attachments...)
		f.representative.Attachments = nil
	}
	f.attachments = forms.NewList(in.Attachments...)
	return f
}

func (f *Form) ClientType() models.Kind {
	return f.clientType
}

// SetClientType swaps the active variant. Values of the other variant stay.
func (f *Form) SetClientType(k models.Kind) error {
	if k != models.KindIndividual && k != models.KindLegalEntity {
		return dErrors.New(dErrors.CodeBadRequest, fmt.Sprintf("unknown client type %q", k))
	}
	f.clientType = k
	return nil
}

func (f *Form) HasRepresentative() bool {
	return f.hasRepresentative
}

// SetHasRepresentative shows or hides the representative sub-form. Its
// values are kept either way.
func (f *Form) SetHasRepresentative(on bool) {
	f.hasRepresentative = on
}

// Individual exposes the individual block for editing.
func (f *Form) Individual() *models.Individual {
	return &f.individual
}

// LegalEntity exposes the organization block for editing.
func (f *Form) LegalEntity() *models.LegalEntity {
	return &f.legalEntity
}

// Representative exposes the representative identity fields for editing.
// Its address and attachments are edited through RepresentativeAddress and
// RepresentativeAttachments.
func (f *Form) Representative() *models.Representative {
	return &f.representative
}

func (f *Form) RepresentativeAddress() *address.Address {
	return &f.repAddress
}

func (f *Form) Attachments() *forms.List[models.Attachment] {
	return f.attachments
}

func (f *Form) RepresentativeAttachments() *forms.List[models.Attachment] {
	return f.repAttachments
}

// Client builds the record the form currently describes: the active
// variant only, and the representative only when switched on.
func (f *Form) Client() models.Client {
	in := models.Input{
		ClientType:        f.clientType,
		HasRepresentative: f.hasRepresentative,
		Attachments:       f.attachments.Values(),
	}
	switch f.clientType {
	case models.KindIndividual:
		ind := f.individual
		in.Individual = &ind
	case models.KindLegalEntity:
		le := f.legalEntity
		in.LegalEntity = &le
	}
	if f.hasRepresentative {
		rep := f.representative
		if !f.repAddress.IsZero() {
			addr := f.repAddress
			rep.Endereco = &addr
		}
		rep.Attachments = f.repAttachments.Values()
		in.Representative = &rep
	}
	return in.Client()
}

// Submit normalizes and validates the current client. The form state is
// left untouched so a failed submit can be corrected.
func (f *Form) Submit() (models.Client, error) {
	c := f.Client()
	c.Normalize()
	if err := c.Validate(); err != nil {
		return models.Client{}, err
	}
	return c, nil
}

// Composition is a laid-out form with errors attached.
type Composition struct {
	Valid  bool          `json:"valid"`
	Groups []forms.Group `json:"groups"`
}

// Compose loads in, validates the client it describes and lays it out.
func Compose(in models.Input) Composition {
	f := FromInput(in)
	_, err := f.Submit()
	return Composition{Valid: err == nil, Groups: f.Groups(err)}
}
