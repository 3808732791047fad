package models

import (
	"bytes"
	"encoding/json"

	"legalflow/internal/validation"
	"legalflow/pkg/domain"
)

// Client is a customer of the practice. Party holds the variant-specific
// data; the representative is present only when HasRepresentative is set.
type Client struct {
	domain.Stamp
	Party             Party
	HasRepresentative bool
	Representative    *Representative
	Attachments       []Attachment
}

// Kind returns the client variant, or "" when the variant is unknown.
func (c Client) Kind() Kind {
	if c.Party == nil {
		return ""
	}
	return c.Party.Kind()
}

// DisplayName returns the name shown in listings.
func (c Client) DisplayName() string {
	if c.Party == nil {
		return ""
	}
	return c.Party.DisplayName()
}

// Individual returns the individual variant, if that is what c holds.
func (c Client) Individual() (*Individual, bool) {
	i, ok := c.Party.(*Individual)
	return i, ok
}

// LegalEntity returns the organization variant, if that is what c holds.
func (c Client) LegalEntity() (*LegalEntity, bool) {
	l, ok := c.Party.(*LegalEntity)
	return l, ok
}

// Normalize trims input and drops a representative that is switched off.
func (c *Client) Normalize() {
	if c.Party != nil {
		c.Party.normalize()
	}
	if !c.HasRepresentative {
		c.Representative = nil
	}
	if c.Representative != nil {
		c.Representative.normalize()
	}
	c.Attachments = normalizeAttachments(c.Attachments)
}

// Validate applies the rule set of the active variant plus the
// representative and attachment rules, reporting every failure.
func (c *Client) Validate() error {
	chk := validation.New()
	if c.Party == nil {
		chk.Add("clientType", "Tipo de cliente inválido.")
	} else {
		c.Party.validate(chk)
	}
	if c.HasRepresentative {
		if c.Representative == nil {
			chk.Add("representative", "Dados do representante são obrigatórios.")
		} else {
			c.Representative.validate(chk.At("representative"))
		}
	}
	validateAttachments(chk, c.Attachments)
	return chk.Err()
}

// Input is the flat wire form of a client, shared by both variants as the
// browser form is. Only the block matching ClientType is kept when it is
// converted to a Client.
type Input struct {
	domain.Stamp
	ClientType Kind `json:"clientType"`
	*Individual
	*LegalEntity
	HasRepresentative bool            `json:"hasRepresentative"`
	Representative    *Representative `json:"representative,omitempty"`
	Attachments       []Attachment    `json:"attachments"`
}

// Client converts the wire form. An unknown ClientType yields a client
// without a Party, which fails validation at clientType.
func (in Input) Client() Client {
	c := Client{
		Stamp:             in.Stamp,
		HasRepresentative: in.HasRepresentative,
		Representative:    in.Representative,
		Attachments:       in.Attachments,
	}
	switch in.ClientType {
	case KindIndividual:
		c.Party = in.Individual
		if in.Individual == nil {
			c.Party = &Individual{}
		}
	case KindLegalEntity:
		c.Party = in.LegalEntity
		if in.LegalEntity == nil {
			c.Party = &LegalEntity{}
		}
	}
	return c
}

// Input converts c to its wire form.
func (c Client) Input() Input {
	in := Input{
		Stamp:             c.Stamp,
		ClientType:        c.Kind(),
		HasRepresentative: c.HasRepresentative,
		Representative:    c.Representative,
		Attachments:       c.Attachments,
	}
	switch p := c.Party.(type) {
	case *Individual:
		in.Individual = p
	case *LegalEntity:
		in.LegalEntity = p
	}
	return in
}

func (c Client) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Input())
}

// UnmarshalJSON decodes the wire form, rejecting unknown fields.
func (c *Client) UnmarshalJSON(data []byte) error {
	var in Input
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&in); err != nil {
		return err
	}
	*c = in.Client()
	return nil
}

// Clone returns a deep copy, so edits to the copy never reach a stored
// record.
func (c Client) Clone() Client {
	out := c
	switch p := c.Party.(type) {
	case *Individual:
		cp := *p
		out.Party = &cp
	case *LegalEntity:
		cp := *p
		out.Party = &cp
	}
	if c.Representative != nil {
		rep := *c.Representative
		if rep.Endereco != nil {
			addr := *rep.Endereco
			rep.Endereco = &addr
		}
		rep.Attachments = append([]Attachment(nil), rep.Attachments...)
		out.Representative = &rep
	}
	out.Attachments = append([]Attachment(nil), c.Attachments...)
	return out
}
