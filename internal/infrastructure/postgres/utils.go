package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/practica-api/internal/domain"
)

// Querier lo que necesitan los repos; lo cumplen *pgxpool.Pool y pgx.Tx.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Códigos SQLSTATE usados para traducir errores.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
	codeInvalidText         = "22P02"
)

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	return pgCode(err) == codeUniqueViolation
}

// isForeignKeyViolation referencia a un padre inexistente o borrado de un padre con hijos (23503).
func isForeignKeyViolation(err error) bool {
	return pgCode(err) == codeForeignKeyViolation
}

// writeErr traduce errores de INSERT/UPDATE. dup es el error de dominio para 23505.
func writeErr(err error, dup error, op string) error {
	switch pgCode(err) {
	case codeUniqueViolation:
		return dup
	case codeForeignKeyViolation, codeInvalidText:
		return domain.ErrInvalidReference
	case codeCheckViolation:
		return fmt.Errorf("%s: %w", op, domain.ErrInvalidInput)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// deleteErr un 23503 al borrar significa que quedan hijos con ON DELETE RESTRICT.
func deleteErr(err error, op string) error {
	if isForeignKeyViolation(err) {
		return domain.ErrInUse
	}
	return fmt.Errorf("%s: %w", op, err)
}

// readErr pgx.ErrNoRows pasa a notFound. Un id que no es UUID tampoco existe.
func readErr(err error, notFound error, op string) error {
	if errors.Is(err, pgx.ErrNoRows) || pgCode(err) == codeInvalidText {
		return notFound
	}
	return fmt.Errorf("%s: %w", op, err)
}

func collect[T any](rows pgx.Rows, scan func(pgx.Row) (*T, error)) ([]*T, error) {
	defer rows.Close()
	out := make([]*T, 0)
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func stamp(created, updated *time.Time) {
	now := time.Now().UTC()
	if created.IsZero() {
		*created = now
	}
	*updated = now
}
