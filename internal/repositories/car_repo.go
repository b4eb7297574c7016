package repositories

import (
	"database/sql"
	"fmt"
	"strings"

	"rentacar/internal/config"
	"rentacar/internal/domain/models"
	"rentacar/internal/utils"
)

// CarRepository wraps read access to the cars table.
type CarRepository struct {
	DB *sql.DB
}

func (r CarRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return config.DB
}

const carSelect = `
	SELECT
		id,
		COALESCE(brand,''),
		COALESCE(model,''),
		COALESCE(description,''),
		COALESCE(image,''),
		COALESCE(car_type,''),
		COALESCE(fuel_type,''),
		CAST(price_per_day AS CHAR),
		COALESCE(rating,0)
	FROM cars
`

// GetByID loads one car. Returns sql.ErrNoRows for unknown ids.
func (r CarRepository) GetByID(id int64) (models.Car, error) {
	if id <= 0 {
		return models.Car{}, sql.ErrNoRows
	}
	row := r.db().QueryRow(carSelect+` WHERE id = ? LIMIT 1`, id)
	return scanCar(row)
}

// List returns cars matching the filter in the requested order. The
// structured filter keeps query construction in one place; callers never
// hand us SQL fragments.
func (r CarRepository) List(f models.CarFilter) ([]models.Car, error) {
	where := []string{}
	args := []any{}

	if f.CarType != "" {
		where = append(where, "car_type = ?")
		args = append(args, f.CarType)
	}
	if f.FuelType != "" {
		where = append(where, "fuel_type = ?")
		args = append(args, f.FuelType)
	}
	if f.Brand != "" {
		where = append(where, "brand = ?")
		args = append(args, f.Brand)
	}
	if f.MinPrice != nil {
		where = append(where, "price_per_day >= ?")
		args = append(args, utils.FormatMoney(*f.MinPrice))
	}
	if f.MaxPrice != nil {
		where = append(where, "price_per_day <= ?")
		args = append(args, utils.FormatMoney(*f.MaxPrice))
	}

	query := carSelect
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += orderClause(f.Sort)

	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list cars: %w", err)
	}
	defer rows.Close()

	return collectCars(rows)
}

// TopRated returns the highest-rated cars for the landing page.
func (r CarRepository) TopRated(limit int) ([]models.Car, error) {
	if limit <= 0 {
		limit = 4
	}
	rows, err := r.db().Query(carSelect+` ORDER BY rating DESC, id ASC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("top rated cars: %w", err)
	}
	defer rows.Close()

	return collectCars(rows)
}

var distinctColumns = map[string]bool{
	"car_type":  true,
	"fuel_type": true,
	"brand":     true,
}

// DistinctValues returns the distinct set for a whitelisted column. The
// whitelist keeps the column name out of caller control.
func (r CarRepository) DistinctValues(column string) ([]string, error) {
	if !distinctColumns[column] {
		return nil, fmt.Errorf("distinct values: column %q not allowed", column)
	}
	rows, err := r.db().Query(`SELECT DISTINCT ` + column + ` FROM cars ORDER BY ` + column + ` ASC`)
	if err != nil {
		return nil, fmt.Errorf("distinct %s: %w", column, err)
	}
	defer rows.Close()

	out := []string{}
	for rows.Next() {
		var v sql.NullString
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		s := strings.TrimSpace(v.String)
		if s == "" {
			continue
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func orderClause(sort models.SortOrder) string {
	switch sort {
	case models.SortPriceDesc:
		return " ORDER BY price_per_day DESC, id ASC"
	case models.SortRatingDesc:
		return " ORDER BY rating DESC, id ASC"
	case models.SortRatingAsc:
		return " ORDER BY rating ASC, id ASC"
	default:
		return " ORDER BY price_per_day ASC, id ASC"
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCar(row rowScanner) (models.Car, error) {
	var c models.Car
	var price string
	if err := row.Scan(
		&c.ID,
		&c.Brand,
		&c.Model,
		&c.Description,
		&c.Image,
		&c.CarType,
		&c.FuelType,
		&price,
		&c.Rating,
	); err != nil {
		return models.Car{}, err
	}
	cents, err := utils.ParseMoney(price)
	if err != nil {
		return models.Car{}, fmt.Errorf("car %d has bad price %q: %w", c.ID, price, err)
	}
	c.PricePerDay = cents
	return c, nil
}

func collectCars(rows *sql.Rows) ([]models.Car, error) {
	list := []models.Car{}
	for rows.Next() {
		c, err := scanCar(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, c)
	}
	return list, rows.Err()
}
