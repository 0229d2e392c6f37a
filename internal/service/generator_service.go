package service

import (
	"context"
	"math/rand"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/employee-data-generator/internal/domain"
	"github.com/shopspring/decimal"
)

// GeneratorService определяет интерфейс генерации синтетических сотрудников
type GeneratorService interface {
	Generate(ctx context.Context, count int) ([]domain.Employee, error)
}

type generatorService struct {
	rng   *rand.Rand
	faker *gofakeit.Faker
}

// NewGeneratorService создаёт генератор со случайным зерном
func NewGeneratorService() GeneratorService {
	return NewSeededGeneratorService(time.Now().UnixNano())
}

// NewSeededGeneratorService создаёт генератор с фиксированным зерном
// для воспроизводимых результатов в тестах
func NewSeededGeneratorService(seed int64) GeneratorService {
	return &generatorService{
		rng:   rand.New(rand.NewSource(seed)),
		faker: gofakeit.New(seed),
	}
}

func (s *generatorService) Generate(ctx context.Context, count int) ([]domain.Employee, error) {
	if count < domain.MinEmployees {
		return nil, domain.ErrCountTooSmall
	}
	if count > domain.MaxEmployees {
		return nil, domain.ErrCountTooLarge
	}

	employees := make([]domain.Employee, 0, count)
	for i := 1; i <= count; i++ {
		employees = append(employees, domain.Employee{
			EmpID:      i,
			FullName:   s.faker.Name(),
			Department: domain.Departments[s.rng.Intn(len(domain.Departments))],
			Salary:     s.randomSalary(),
			HireDate:   s.randomHireDate(),
		})
	}

	return employees, nil
}

// randomSalary возвращает равномерно распределённую зарплату из
// [MinSalary, MaxSalary] с двумя знаками после запятой
func (s *generatorService) randomSalary() decimal.Decimal {
	min := domain.MinSalary.InexactFloat64()
	max := domain.MaxSalary.InexactFloat64()
	return decimal.NewFromFloat(min + s.rng.Float64()*(max-min)).Round(2)
}

// randomHireDate возвращает дату найма из [HireDateStart, сегодня]
func (s *generatorService) randomHireDate() time.Time {
	start := domain.HireDateStart
	now := time.Now().UTC()
	end := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	days := int(end.Sub(start).Hours() / 24)
	return start.AddDate(0, 0, s.rng.Intn(days+1))
}
