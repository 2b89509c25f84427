// Package services holds the business logic between controllers and
// repositories.
//
// Services defined in this package:
// - AuthService: user registration and login
// - CentroService: voting centers and their tables
// - PartidoService: political party registry
// - EleccionService: elections
// - AgrupacionService: political groupings and government plans
// - CandidatoService: candidates and nominations
package services
