package store

import "github.com/powerfitbr/powerfit/internal/domain"

// Built-in demo credentials. Placeholder accounts only: real credential
// verification is out of scope and plugged in via CredentialVerifier.
const (
	AdminUsername   = "ADM554"
	AdminPassword   = "ADM1234"
	StudentUsername = "ALUNO123"
	StudentPassword = "123ALUNO"
)

// AdminFixture returns the single built-in back-office identity.
func AdminFixture() domain.AdminIdentity {
	return domain.AdminIdentity{
		ID:       1,
		Name:     "Admin",
		Username: AdminUsername,
		Email:    "admin@powerfit.com",
		Role:     "administrator",
		Photo:    "/images/admin-avatar.jpg",
	}
}

// StudentFixture returns the single built-in student identity with its mock
// training history.
func StudentFixture() domain.StudentIdentity {
	return domain.StudentIdentity{
		ID:            1,
		Name:          "Lucas Silva",
		Username:      StudentUsername,
		Email:         "lucas.silva@exemplo.com",
		Phone:         "(11) 99999-8888",
		BirthDate:     "1995-06-15",
		Plan:          "Premium",
		PlanStartDate: "2023-01-10",
		PlanEndDate:   "2023-12-10",
		Photo:         "https://images.unsplash.com/photo-1568602471122-7832951cc4c5?ixlib=rb-4.0.3",
		Address: domain.Address{
			Street:  "Rua das Flores, 123",
			City:    "São Paulo",
			State:   "SP",
			ZipCode: "01234-567",
		},
		Measurements: []domain.Measurement{
			{Date: "2023-10-15", Weight: 78.5, Height: 1.82, BMI: 23.7, BodyFat: 15.2, Chest: 98, Waist: 82, Arms: 32, Legs: 60},
			{Date: "2023-11-15", Weight: 77.2, Height: 1.82, BMI: 23.3, BodyFat: 14.5, Chest: 99, Waist: 80, Arms: 33, Legs: 61},
		},
		Workouts: []domain.Workout{
			{
				ID:   1,
				Name: "Treino A - Peito e Tríceps",
				Day:  "Segunda-feira",
				Exercises: []domain.Exercise{
					{Name: "Supino Reto", Sets: 4, Reps: "12, 10, 8, 8", Weight: "30, 40, 45, 45"},
					{Name: "Supino Inclinado", Sets: 3, Reps: "12, 10, 8", Weight: "25, 30, 35"},
					{Name: "Crucifixo", Sets: 3, Reps: "12, 12, 12", Weight: "16, 16, 16"},
					{Name: "Tríceps Corda", Sets: 4, Reps: "15, 12, 12, 10", Weight: "25, 30, 30, 35"},
					{Name: "Tríceps Francês", Sets: 3, Reps: "12, 10, 10", Weight: "15, 17.5, 17.5"},
				},
			},
			{
				ID:   2,
				Name: "Treino B - Costas e Bíceps",
				Day:  "Quarta-feira",
				Exercises: []domain.Exercise{
					{Name: "Puxada Frontal", Sets: 4, Reps: "12, 10, 8, 8", Weight: "50, 60, 70, 70"},
					{Name: "Remada Curvada", Sets: 3, Reps: "12, 10, 8", Weight: "40, 45, 50"},
					{Name: "Remada Unilateral", Sets: 3, Reps: "10, 10, 10", Weight: "20, 20, 20"},
					{Name: "Rosca Direta", Sets: 4, Reps: "12, 10, 8, 8", Weight: "15, 17.5, 20, 20"},
					{Name: "Rosca Alternada", Sets: 3, Reps: "12, 10, 10", Weight: "12, 14, 14"},
				},
			},
			{
				ID:   3,
				Name: "Treino C - Pernas e Ombros",
				Day:  "Sexta-feira",
				Exercises: []domain.Exercise{
					{Name: "Agachamento", Sets: 4, Reps: "12, 10, 8, 8", Weight: "50, 60, 70, 70"},
					{Name: "Leg Press", Sets: 3, Reps: "12, 10, 8", Weight: "120, 150, 180"},
					{Name: "Cadeira Extensora", Sets: 3, Reps: "15, 12, 12", Weight: "40, 45, 45"},
					{Name: "Desenvolvimento", Sets: 4, Reps: "12, 10, 8, 8", Weight: "20, 25, 30, 30"},
					{Name: "Elevação Lateral", Sets: 3, Reps: "12, 12, 12", Weight: "10, 10, 10"},
				},
			},
		},
	}
}

// ContactFixtures returns the demo inbox entries seeded on first boot.
func ContactFixtures() []domain.ContactMessage {
	return []domain.ContactMessage{
		{
			ID:      "5f1c7d2e-3b7a-4e2f-9c41-demo00000001",
			Name:    "Ana Silva",
			Email:   "ana.silva@exemplo.com",
			Phone:   "(11) 98765-4321",
			Subject: "Informações sobre planos",
			Message: "Olá, gostaria de saber mais sobre os planos de assinatura disponíveis.",
			Date:    "2023-05-15T10:30:00Z",
			Status:  domain.ContactStatusResolved,
		},
		{
			ID:      "5f1c7d2e-3b7a-4e2f-9c41-demo00000002",
			Name:    "Carlos Santos",
			Email:   "carlos.santos@exemplo.com",
			Phone:   "(21) 99876-5432",
			Subject: "Agendar uma visita",
			Message: "Gostaria de agendar uma visita para conhecer a academia.",
			Date:    "2023-05-18T14:45:00Z",
			Status:  domain.ContactStatusNew,
		},
		{
			ID:      "5f1c7d2e-3b7a-4e2f-9c41-demo00000003",
			Name:    "Mariana Costa",
			Email:   "mariana.costa@exemplo.com",
			Phone:   "(31) 98765-1234",
			Subject: "Personal Trainer",
			Message: "Estou interessada em contratar um personal trainer. Quais são as opções disponíveis?",
			Date:    "2023-05-20T09:15:00Z",
			Status:  domain.ContactStatusInProgress,
		},
	}
}
