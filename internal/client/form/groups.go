package form

import (
	"legalflow/internal/address"
	"legalflow/internal/client/models"
	"legalflow/internal/forms"
	dErrors "legalflow/pkg/domain-errors"
)

// Groups lays the form out as field groups and attaches the field errors
// carried by err. Errors whose path matches no input land on the top group.
func (f *Form) Groups(err error) []forms.Group {
	groups := []forms.Group{
		{
			Name:  "client",
			Label: "Cliente",
			Fields: []forms.Field{
				forms.Select("clientType", "Tipo de cliente", string(f.clientType), true,
					string(models.KindIndividual), string(models.KindLegalEntity)),
				forms.Checkbox("hasRepresentative", "Possui representante", f.hasRepresentative),
			},
		},
		f.individualGroup(),
		f.legalEntityGroup(),
		f.representativeGroup(),
		attachmentsGroup("attachments", "Anexos", f.attachments),
	}
	for _, e := range forms.AttachErrors(groups, dErrors.FieldsOf(err)) {
		groups[0].Errors = append(groups[0].Errors, e.Message)
	}
	return groups
}

func (f *Form) individualGroup() forms.Group {
	ind := f.individual
	return forms.Group{
		Name:   "individual",
		Label:  "Pessoa física",
		Hidden: f.clientType != models.KindIndividual,
		Fields: personFields("", ind.Person),
		Groups: []forms.Group{addressGroup("endereco", "Endereço", ind.Endereco)},
	}
}

func (f *Form) legalEntityGroup() forms.Group {
	le := f.legalEntity
	resp := le.Responsavel
	return forms.Group{
		Name:   "legalEntity",
		Label:  "Pessoa jurídica",
		Hidden: f.clientType != models.KindLegalEntity,
		Fields: []forms.Field{
			forms.Text("cnpj", "CNPJ", le.CNPJ, true),
			forms.Text("razaoSocial", "Razão Social", le.RazaoSocial, true),
			forms.Text("nomeFantasia", "Nome Fantasia", le.NomeFantasia, false),
			forms.Text("inscricaoEstadual", "Inscrição Estadual", le.InscricaoEstadual, false),
			forms.Text("inscricaoMunicipal", "Inscrição Municipal", le.InscricaoMunicipal, false),
		},
		Groups: []forms.Group{
			{
				Name:  "responsavel",
				Label: "Responsável legal",
				Path:  "responsavel",
				Fields: []forms.Field{
					forms.Text("responsavel.nome", "Nome", resp.Nome, true),
					forms.Text("responsavel.apelido", "Apelido", resp.Apelido, false),
					forms.Text("responsavel.cpf", "CPF", resp.CPF, true),
					forms.Text("responsavel.fone", "Telefone", resp.Fone, false),
					forms.Text("responsavel.email", "Email", resp.Email, false),
				},
			},
			addressGroup("enderecoPJ", "Endereço da empresa", le.EnderecoPJ),
		},
	}
}

func (f *Form) representativeGroup() forms.Group {
	rep := f.representative
	fields := personFields("representative", rep.Person)
	fields = append(fields, forms.Text("representative.grauParentesco", "Grau de parentesco", rep.GrauParentesco, true))
	return forms.Group{
		Name:   "representative",
		Label:  "Representante",
		Path:   "representative",
		Hidden: !f.hasRepresentative,
		Fields: fields,
		Groups: []forms.Group{
			addressGroup("representative.endereco", "Endereço do representante", f.repAddress),
			attachmentsGroup("representative.attachments", "Anexos do representante", f.repAttachments),
		},
	}
}

func personFields(prefix string, p models.Person) []forms.Field {
	at := func(name string) string { return forms.Join(prefix, name) }
	return []forms.Field{
		forms.Text(at("cpf"), "CPF", p.CPF, true),
		forms.Text(at("nomeCompleto"), "Nome completo", p.NomeCompleto, true),
		forms.Text(at("apelido"), "Apelido", p.Apelido, false),
		forms.Date(at("dataNascimento"), "Data de nascimento", p.DataNascimento, false),
		forms.Text(at("naturalidade"), "Naturalidade", p.Naturalidade, false),
		forms.Text(at("rg"), "RG", p.RG, false),
		forms.Text(at("orgaoEmissor"), "Órgão emissor", p.OrgaoEmissor, false),
		forms.Select(at("genero"), "Gênero", p.Genero, false, models.Genders...),
		forms.Select(at("estadoCivil"), "Estado civil", p.EstadoCivil, false, models.MaritalStatuses...),
		forms.Text(at("nomeMae"), "Nome da mãe", p.NomeMae, false),
		forms.Text(at("nomePai"), "Nome do pai", p.NomePai, false),
		forms.Text(at("contato"), "Contato", p.Contato, false),
		forms.Text(at("email"), "Email", p.Email, false),
	}
}

// addressGroup lays out an address that may be left blank. Its errors only
// show up once some field is filled in.
func addressGroup(path, label string, a address.Address) forms.Group {
	at := func(name string) string { return forms.Join(path, name) }
	return forms.Group{
		Name:  "address",
		Label: label,
		Path:  path,
		Fields: []forms.Field{
			forms.Text(at("street"), "Rua", a.Street, false),
			forms.Text(at("number"), "Número", a.Number, false),
			forms.Text(at("complement"), "Complemento", a.Complement, false),
			forms.Text(at("neighborhood"), "Bairro", a.Neighborhood, false),
			forms.Text(at("city"), "Cidade", a.City, false),
			forms.Text(at("state"), "UF", a.State, false),
			forms.Text(at("zipCode"), "CEP", a.ZipCode, false),
			forms.Text(at("referencePoint"), "Ponto de referência", a.ReferencePoint, false),
		},
	}
}

// attachmentsGroup renders one row group per attachment, keyed by the
// row's stable key.
func attachmentsGroup(path, label string, list *forms.List[models.Attachment]) forms.Group {
	g := forms.Group{Name: "attachments", Label: label, Path: path}
	for i, row := range list.Rows() {
		rowPath := forms.Index(path, i)
		g.Groups = append(g.Groups, forms.Group{
			Name: "attachment",
			Path: rowPath,
			Key:  row.Key,
			Fields: []forms.Field{
				forms.Text(forms.Join(rowPath, "name"), "Nome do arquivo", row.Value.Name, true),
				forms.Text(forms.Join(rowPath, "type"), "Tipo", row.Value.Type, false),
			},
		})
	}
	return g
}
