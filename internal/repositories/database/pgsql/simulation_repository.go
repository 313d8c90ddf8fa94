package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/loansim/loan_simulation_api/internal/apperrors"
	"github.com/loansim/loan_simulation_api/internal/core/domain"
	portsrepo "github.com/loansim/loan_simulation_api/internal/core/ports/repositories"
	"github.com/loansim/loan_simulation_api/internal/models"
	"github.com/loansim/loan_simulation_api/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxSimulationRepository struct {
	BaseRepository
}

// newPgxSimulationRepository creates a new repository for simulations and
// their installments.
func newPgxSimulationRepository(pool *pgxpool.Pool) portsrepo.SimulationRepositoryFacade {
	return &PgxSimulationRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.SimulationRepositoryFacade = (*PgxSimulationRepository)(nil)

// insertInstallments writes every installment of every schedule inside tx.
func insertInstallments(ctx context.Context, tx pgx.Tx, simulationID int64, schedules []domain.Schedule) error {
	query := `
		INSERT INTO simulacao_parcela (id_simulacao, tipo_amortizacao, numero, valor_amortizacao, valor_juros, valor_prestacao)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	for _, schedule := range schedules {
		for _, row := range mapping.ToModelInstallments(simulationID, schedule) {
			_, err := tx.Exec(ctx, query,
				row.SimulationID,
				row.ScheduleType,
				row.Number,
				row.Amortization,
				row.Interest,
				row.Payment,
			)
			if err != nil {
				return fmt.Errorf("failed to insert installment %d of %s schedule: %w", row.Number, row.ScheduleType, err)
			}
		}
	}
	return nil
}

// InsertSimulation persists the header and both schedules in one
// transaction so a failure cannot leave an orphaned header behind.
func (r *PgxSimulationRepository) InsertSimulation(ctx context.Context, sim domain.Simulation, schedules []domain.Schedule) (int64, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer r.Rollback(ctx, tx)

	modelSim := mapping.ToModelSimulation(sim)

	headerQuery := `
		INSERT INTO simulacao (co_produto, valor_desejado, prazo, pc_taxa_juros, data_simulacao)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id_simulacao;
	`
	var id int64
	err = tx.QueryRow(ctx, headerQuery,
		modelSim.ProductCode,
		modelSim.Amount,
		modelSim.TermMonths,
		modelSim.InterestRate,
		modelSim.CreatedAt,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert simulation header: %w", err)
	}

	if err := insertInstallments(ctx, tx, id, schedules); err != nil {
		return 0, err
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit simulation insert: %w", err)
	}
	return id, nil
}

// UpdateSimulation replaces the header fields and all installments of an
// existing simulation, preserving its identity. Header update and
// installment replacement share one transaction.
func (r *PgxSimulationRepository) UpdateSimulation(ctx context.Context, sim domain.Simulation, schedules []domain.Schedule) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	modelSim := mapping.ToModelSimulation(sim)

	headerQuery := `
		UPDATE simulacao
		SET co_produto = $2, valor_desejado = $3, prazo = $4, pc_taxa_juros = $5, data_simulacao = $6
		WHERE id_simulacao = $1;
	`
	tag, err := tx.Exec(ctx, headerQuery,
		modelSim.ID,
		modelSim.ProductCode,
		modelSim.Amount,
		modelSim.TermMonths,
		modelSim.InterestRate,
		modelSim.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update simulation header %d: %w", sim.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if _, err := tx.Exec(ctx, `DELETE FROM simulacao_parcela WHERE id_simulacao = $1;`, modelSim.ID); err != nil {
		return fmt.Errorf("failed to clear installments of simulation %d: %w", sim.ID, err)
	}

	if err := insertInstallments(ctx, tx, modelSim.ID, schedules); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit simulation update: %w", err)
	}
	return nil
}

// DeleteSimulation removes a simulation and its installments.
func (r *PgxSimulationRepository) DeleteSimulation(ctx context.Context, id int64) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if _, err := tx.Exec(ctx, `DELETE FROM simulacao_parcela WHERE id_simulacao = $1;`, id); err != nil {
		return fmt.Errorf("failed to delete installments of simulation %d: %w", id, err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM simulacao WHERE id_simulacao = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete simulation %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit simulation delete: %w", err)
	}
	return nil
}

// FindSimulationByID retrieves a simulation header together with its stored
// schedules.
func (r *PgxSimulationRepository) FindSimulationByID(ctx context.Context, id int64) (*domain.Simulation, []domain.Schedule, error) {
	headerQuery := `
		SELECT id_simulacao, co_produto, valor_desejado, prazo, pc_taxa_juros, data_simulacao
		FROM simulacao
		WHERE id_simulacao = $1;
	`
	var m models.Simulation
	err := r.Pool.QueryRow(ctx, headerQuery, id).Scan(
		&m.ID,
		&m.ProductCode,
		&m.Amount,
		&m.TermMonths,
		&m.InterestRate,
		&m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, apperrors.ErrNotFound
		}
		return nil, nil, fmt.Errorf("failed to find simulation %d: %w", id, err)
	}

	installmentQuery := `
		SELECT id_parcela, id_simulacao, tipo_amortizacao, numero, valor_amortizacao, valor_juros, valor_prestacao
		FROM simulacao_parcela
		WHERE id_simulacao = $1
		ORDER BY tipo_amortizacao, numero;
	`
	rows, err := r.Pool.Query(ctx, installmentQuery, id)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query installments of simulation %d: %w", id, err)
	}
	defer rows.Close()

	modelInstallments, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Installment])
	if err != nil {
		return nil, nil, fmt.Errorf("failed to collect installment rows: %w", err)
	}

	sim := mapping.ToDomainSimulation(m)
	return &sim, mapping.ToDomainSchedules(modelInstallments), nil
}

// ListSimulations retrieves all persisted simulation headers, newest first.
func (r *PgxSimulationRepository) ListSimulations(ctx context.Context) ([]domain.Simulation, error) {
	query := `
		SELECT id_simulacao, co_produto, valor_desejado, prazo, pc_taxa_juros, data_simulacao
		FROM simulacao
		ORDER BY data_simulacao DESC, id_simulacao DESC;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query simulations: %w", err)
	}
	defer rows.Close()

	modelSims, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Simulation])
	if err != nil {
		return nil, fmt.Errorf("failed to collect simulation rows: %w", err)
	}

	return mapping.ToDomainSimulationSlice(modelSims), nil
}

// CountSimulations reports how many simulations are persisted.
func (r *PgxSimulationRepository) CountSimulations(ctx context.Context) (int64, error) {
	var count int64
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM simulacao;`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count simulations: %w", err)
	}
	return count, nil
}
