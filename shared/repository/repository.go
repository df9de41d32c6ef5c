package repository

import (
	"context"
	"database/sql"
	"dailytodo/infras/otel"
	"dailytodo/infras/postgres"
	"dailytodo/shared/constant"
	"dailytodo/shared/dto"
	"dailytodo/shared/logger"
	"errors"
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const setArgPrefix = "set_"

var (
	ErrNotFound    = errors.New("data not found")
	ErrDuplicate   = errors.New("data already exists")
	ErrInvalidData = errors.New("data violates a table constraint")

	errRequiredFilter = errors.New("required filter")
	errRequiredValues = errors.New("required update values")
)

type column struct {
	name  string
	table string
}

func (c column) String() string {
	if c.table == "" {
		return c.name
	}

	return fmt.Sprintf("%s.%s", c.table, c.name)
}

type execer interface {
	NamedExecContext(ctx context.Context, query string, arg interface{}) (sql.Result, error)
}

type preparer interface {
	PrepareNamedContext(ctx context.Context, query string) (*sqlx.NamedStmt, error)
}

// Repository is a table gateway for T. Columns come from the `db` tags of T,
// including embedded structs.
type Repository[T any] struct {
	db            *postgres.Connection
	otel          otel.Otel
	table         string
	entitas       string
	primaryColumn string
	columns       []column
	InsertColumns []string
}

func NewRepository[T any](entitasName, tableName, primaryColumn string, dbConnection *postgres.Connection, otl otel.Otel) Repository[T] {
	var zero T

	columns, insertColumns := getColumns(tableName, reflect.TypeOf(zero))

	return Repository[T]{
		db:            dbConnection,
		otel:          otl,
		table:         tableName,
		entitas:       entitasName,
		primaryColumn: primaryColumn,
		columns:       columns,
		InsertColumns: insertColumns,
	}
}

func (repo *Repository[T]) spanName(operation string) string {
	return fmt.Sprintf("%s.%s.%s", constant.OtelRepositoryScopeName, repo.entitas, operation)
}

// Insert writes model and returns the stored row. When columns is empty every
// insertable column is written; otherwise only the named ones, leaving the rest
// to table defaults.
func (repo *Repository[T]) Insert(ctx context.Context, model T, columns ...string) (T, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("Insert"))
	defer scope.End()

	if len(columns) == 0 {
		columns = repo.InsertColumns
	}

	placeholders := make([]string, len(columns))
	for i, col := range columns {
		placeholders[i] = ":" + col
	}

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING %s",
		repo.table, strings.Join(columns, ", "), strings.Join(placeholders, ", "), repo.getSelectQuery())
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	stored, err := repo.getOne(ctx, repo.db.Write, query, model)
	if err != nil {
		scope.TraceError(err)

		return stored, fmt.Errorf("failed to insert data (%s): %w", repo.entitas, err)
	}

	return stored, nil
}

func (repo *Repository[T]) Get(ctx context.Context, filter dto.FilterGroup) (T, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("Get"))
	defer scope.End()

	where, args := repo.BuildWhereClause(filter)

	query := fmt.Sprintf("SELECT %s FROM %s%s", repo.getSelectQuery(), repo.table, where)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	model, err := repo.getOne(ctx, repo.db.Read, query, args)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			scope.TraceError(err)
		}

		return model, fmt.Errorf("failed to get data (%s): %w", repo.entitas, err)
	}

	return model, nil
}

// GetAll returns every row matching filter ordered by the primary column.
// The result is never nil.
func (repo *Repository[T]) GetAll(ctx context.Context, filter dto.FilterGroup) ([]T, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("GetAll"))
	defer scope.End()

	where, args := repo.BuildWhereClause(filter)

	query := fmt.Sprintf("SELECT %s FROM %s%s ORDER BY %s.%s %s",
		repo.getSelectQuery(), repo.table, where, repo.table, repo.primaryColumn, constant.SQLSortAsc)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	models := []T{}

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return models, fmt.Errorf("failed to prepare statement (%s): %w", repo.entitas, err)
	}
	defer prepare.Close()

	if err = prepare.SelectContext(ctx, &models, args); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return models, fmt.Errorf("failed to get all data (%s): %w", repo.entitas, err)
	}

	return models, nil
}

// Update sets values on the rows matching filter and returns the first
// updated row, or ErrNotFound when nothing matched.
func (repo *Repository[T]) Update(ctx context.Context, values map[string]any, filter dto.FilterGroup) (T, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("Update"))
	defer scope.End()

	var model T

	if len(values) == 0 {
		return model, errRequiredValues
	}

	where, args := repo.BuildWhereClause(filter)
	if where == "" {
		return model, errRequiredFilter
	}

	updateField := []string{}

	for _, col := range slices.Sorted(maps.Keys(values)) {
		updateField = append(updateField, fmt.Sprintf("%s = :%s%s", col, setArgPrefix, col))
		args[setArgPrefix+col] = values[col]
	}

	query := fmt.Sprintf("UPDATE %s SET %s%s RETURNING %s",
		repo.table, strings.Join(updateField, ", "), where, repo.getSelectQuery())
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	model, err := repo.getOne(ctx, repo.db.Write, query, args)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			scope.TraceError(err)
		}

		return model, fmt.Errorf("failed to update data (%s): %w", repo.entitas, err)
	}

	return model, nil
}

// Delete removes the rows matching filter and returns ErrNotFound when none did.
func (repo *Repository[T]) Delete(ctx context.Context, filter dto.FilterGroup) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("Delete"))
	defer scope.End()

	where, args := repo.BuildWhereClause(filter)
	if where == "" {
		return errRequiredFilter
	}

	query := fmt.Sprintf("DELETE FROM %s%s", repo.table, where)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	_, err := repo.delete(ctx, repo.db.Write, query, args)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			scope.TraceError(err)
		}

		return fmt.Errorf("failed to delete data (%s): %w", repo.entitas, err)
	}

	return nil
}

// DeleteAll empties the table and returns the number of removed rows, or
// ErrNotFound when the table was already empty.
func (repo *Repository[T]) DeleteAll(ctx context.Context) (int64, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("DeleteAll"))
	defer scope.End()

	query := "DELETE FROM " + repo.table
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	affected, err := repo.delete(ctx, repo.db.Write, query, map[string]any{})
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			scope.TraceError(err)
		}

		return 0, fmt.Errorf("failed to delete all data (%s): %w", repo.entitas, err)
	}

	scope.SetAttribute("rows_affected", affected)

	return affected, nil
}

func (repo *Repository[T]) delete(ctx context.Context, exec execer, query string, args map[string]any) (int64, error) {
	result, err := exec.NamedExecContext(ctx, query, args)
	if err != nil {
		logger.ErrorWithStack(err)

		return 0, translate(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		logger.ErrorWithStack(err)

		return 0, err //nolint:wrapcheck
	}

	if affected == 0 {
		return 0, ErrNotFound
	}

	return affected, nil
}

func (repo *Repository[T]) getOne(ctx context.Context, db preparer, query string, arg any) (T, error) {
	var model T

	prepare, err := db.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)

		return model, fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer prepare.Close()

	err = prepare.GetContext(ctx, &model, arg)
	if errors.Is(err, sql.ErrNoRows) {
		return model, ErrNotFound
	}

	if err != nil {
		err = translate(err)
		if !errors.Is(err, ErrDuplicate) && !errors.Is(err, ErrInvalidData) {
			logger.ErrorWithStack(err)
		}

		return model, err
	}

	return model, nil
}

func (repo *Repository[T]) getSelectQuery() string {
	columns := make([]string, len(repo.columns))
	for i, col := range repo.columns {
		columns[i] = col.String()
	}

	return strings.Join(columns, ", ")
}

func (repo *Repository[T]) BuildWhereClause(filter dto.FilterGroup) (string, map[string]any) {
	where, args := filter.GetWhereClause()

	if where == "" {
		return where, map[string]any{}
	}

	return " WHERE " + where, args
}

// translate maps postgres constraint violations onto the package sentinels.
func translate(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}

	switch string(pqErr.Code) {
	case constant.PqErrorCodeUniqueViolation:
		return fmt.Errorf("%w: %s", ErrDuplicate, pqErr.Message)
	case constant.PqErrorCodeCheckViolation:
		return fmt.Errorf("%w: %s", ErrInvalidData, pqErr.Message)
	default:
		return err
	}
}

func getColumns(table string, reflectType reflect.Type) (columns []column, insertColumns []string) {
	for i := range reflectType.NumField() {
		field := reflectType.Field(i)
		dbTag := field.Tag.Get("db")

		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			col, insertCol := getColumns(table, field.Type)
			columns = append(columns, col...)
			insertColumns = append(insertColumns, insertCol...)

			continue
		}

		if dbTag == "" || dbTag == "-" {
			continue
		}

		insertColumns = append(insertColumns, dbTag)
		columns = append(columns, column{name: dbTag, table: table})
	}

	return columns, insertColumns
}
