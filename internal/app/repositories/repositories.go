package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	CentroRepository     *CentroRepository
	MesaRepository       *MesaRepository
	UsuarioRepository    *UsuarioRepository
	PartidoRepository    *PartidoRepository
	EleccionRepository   *EleccionRepository
	AgrupacionRepository *AgrupacionRepository
	PlanRepository       *PlanRepository
	CandidatoRepository  *CandidatoRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		CentroRepository:     NewCentroRepository(db),
		MesaRepository:       NewMesaRepository(db),
		UsuarioRepository:    NewUsuarioRepository(db),
		PartidoRepository:    NewPartidoRepository(db),
		EleccionRepository:   NewEleccionRepository(db),
		AgrupacionRepository: NewAgrupacionRepository(db),
		PlanRepository:       NewPlanRepository(db),
		CandidatoRepository:  NewCandidatoRepository(db),
	}
}
