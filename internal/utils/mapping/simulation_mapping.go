package mapping

import (
	"github.com/loansim/loan_simulation_api/internal/core/domain"
	"github.com/loansim/loan_simulation_api/internal/models"
)

// ToModelSimulation converts a domain Simulation to a model Simulation
func ToModelSimulation(d domain.Simulation) models.Simulation {
	return models.Simulation{
		ID:           d.ID,
		ProductCode:  d.ProductCode,
		Amount:       d.Amount,
		TermMonths:   d.TermMonths,
		InterestRate: d.InterestRate,
		CreatedAt:    d.CreatedAt,
	}
}

// ToDomainSimulation converts a model Simulation to a domain Simulation
func ToDomainSimulation(m models.Simulation) domain.Simulation {
	return domain.Simulation{
		ID:           m.ID,
		ProductCode:  m.ProductCode,
		Amount:       m.Amount,
		TermMonths:   m.TermMonths,
		InterestRate: m.InterestRate,
		CreatedAt:    m.CreatedAt,
	}
}

// ToDomainSimulationSlice converts a slice of model Simulations to domain Simulations
func ToDomainSimulationSlice(ms []models.Simulation) []domain.Simulation {
	ds := make([]domain.Simulation, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainSimulation(m)
	}
	return ds
}

// ToModelInstallments flattens a schedule into SIMULACAO_PARCELA rows for
// the given simulation id.
func ToModelInstallments(simulationID int64, schedule domain.Schedule) []models.Installment {
	rows := make([]models.Installment, len(schedule.Installments))
	for i, inst := range schedule.Installments {
		rows[i] = models.Installment{
			SimulationID: simulationID,
			ScheduleType: string(schedule.Type),
			Number:       inst.Number,
			Amortization: inst.Amortization,
			Interest:     inst.Interest,
			Payment:      inst.Payment,
		}
	}
	return rows
}

// ToDomainSchedules groups installment rows by schedule type, preserving
// period order within each group. SAC is listed before PRICE when both are
// present.
func ToDomainSchedules(rows []models.Installment) []domain.Schedule {
	byType := make(map[domain.ScheduleType][]domain.Installment)
	for _, r := range rows {
		t := domain.ScheduleType(r.ScheduleType)
		byType[t] = append(byType[t], domain.Installment{
			Number:       r.Number,
			Amortization: r.Amortization,
			Interest:     r.Interest,
			Payment:      r.Payment,
		})
	}

	schedules := make([]domain.Schedule, 0, len(byType))
	for _, t := range []domain.ScheduleType{domain.ScheduleSAC, domain.SchedulePrice} {
		if insts, ok := byType[t]; ok {
			schedules = append(schedules, domain.Schedule{Type: t, Installments: insts})
		}
	}
	return schedules
}
