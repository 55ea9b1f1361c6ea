package seed

import (
	"time"

	"conectacausa/pkg/types"
)

// seededAt is the creation time stamped on every seed record.
var seededAt = time.Date(2024, time.January, 15, 12, 0, 0, 0, time.UTC)

// Users returns the seed user collection: one volunteer, one organization
// account.
func Users() []types.User {
	return []types.User{
		{
			ID:           "user-1",
			Name:         "Ana Silva",
			Email:        "ana@example.com",
			Role:         types.RoleVolunteer,
			Skills:       []string{"Ensino", "Matemática", "Inglês", "Artes"},
			Location:     "São Paulo, SP",
			Availability: "Finais de semana",
		},
		{
			ID:           "org-user-1",
			Name:         "João Ong",
			Email:        "joao@ong.org",
			Role:         types.RoleOrganization,
			Skills:       []string{},
			Location:     "São Paulo, SP",
			Availability: "Comercial",
		},
	}
}

// Organizations returns the seed organization profiles. The seed
// opportunities are posted by the first one.
func Organizations() []types.Organization {
	return []types.Organization{
		{
			ID:          "org-1",
			OwnerID:     "org-user-1",
			Name:        "Educando o Futuro",
			Description: "ONG dedicada a reforço escolar para crianças carentes.",
			Address:     "Rua das Flores, 123",
			Phone:       "1199999999",
		},
	}
}

func Opportunities() []types.Opportunity {
	org := Organizations()[0]

	return []types.Opportunity{
		{
			ID:               "opp-1",
			OrganizationID:   org.ID,
			OrganizationName: org.Name,
			Title:            "Professor de Matemática Voluntário",
			Description:      "Buscamos voluntários para ensinar matemática básica para crianças de 10-12 anos.",
			RequiredSkills:   []string{"Matemática", "Ensino", "Paciência"},
			Location:         "São Paulo, SP",
			Schedule:         "Sábados, 9h-12h",
			CreatedAt:        seededAt,
		},
		{
			ID:               "opp-2",
			OrganizationID:   org.ID,
			OrganizationName: org.Name,
			Title:            "Monitor de Recreação",
			Description:      "Auxiliar nas atividades recreativas e artísticas.",
			RequiredSkills:   []string{"Artes", "Recreação"},
			Location:         "São Paulo, SP",
			Schedule:         "Domingos, 14h-17h",
			CreatedAt:        seededAt,
		},
		{
			ID:               "opp-3",
			OrganizationID:   org.ID,
			OrganizationName: org.Name,
			Title:            "Desenvolvedor Web (Site Institucional)",
			Description:      "Precisamos de ajuda para atualizar nosso site institucional.",
			RequiredSkills:   []string{"React", "Web Design", "HTML"},
			Location:         types.RemoteLocation,
			Schedule:         "Flexível",
			CreatedAt:        seededAt,
		},
	}
}

func Applications() []types.Application {
	return []types.Application{}
}
