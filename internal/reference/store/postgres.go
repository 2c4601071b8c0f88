package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"connectsphere/internal/reference/models"
	id "connectsphere/pkg/domain"
	"connectsphere/pkg/platform/sentinel"
)

// PostgresStore reads the reference catalog from PostgreSQL. The Upsert
// methods exist for seeding at boot; there is no request-driven write path.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

const countryColumns = `country_id, country_code, name, continent, capital, currency_code, country_dial_number`

func (s *PostgresStore) ListCountries(ctx context.Context) ([]*models.Country, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+countryColumns+` FROM countries ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list countries: %w", err)
	}
	defer rows.Close()

	var out []*models.Country
	for rows.Next() {
		c, err := scanCountry(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (s *PostgresStore) GetCountry(ctx context.Context, countryID id.CountryID) (*models.Country, error) {
	c, err := scanCountry(s.db.QueryRowContext(ctx,
		`SELECT `+countryColumns+` FROM countries WHERE country_id = $1`, countryID.String()))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get country: %w", err)
	}
	return c, nil
}

func (s *PostgresStore) GetCountryByCode(ctx context.Context, code string) (*models.Country, error) {
	c, err := scanCountry(s.db.QueryRowContext(ctx,
		`SELECT `+countryColumns+` FROM countries WHERE UPPER(country_code) = UPPER($1)`, code))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get country by code: %w", err)
	}
	return c, nil
}

func (s *PostgresStore) GetCountryByName(ctx context.Context, name string) (*models.Country, error) {
	c, err := scanCountry(s.db.QueryRowContext(ctx,
		`SELECT `+countryColumns+` FROM countries WHERE LOWER(name) = LOWER($1)`, name))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get country by name: %w", err)
	}
	return c, nil
}

func (s *PostgresStore) GetPersonType(ctx context.Context, typeID id.PersonTypeID) (*models.PersonType, error) {
	var rawID, name string
	err := s.db.QueryRowContext(ctx,
		`SELECT person_type_id, name FROM person_types WHERE person_type_id = $1`, typeID.String()).
		Scan(&rawID, &name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get person type: %w", err)
	}
	parsed, err := id.ParsePersonTypeID(rawID)
	if err != nil {
		return nil, fmt.Errorf("scan person type: %w", err)
	}
	res := models.ReconstructPersonType(parsed, name)
	if !res.IsSuccess() {
		return nil, fmt.Errorf("scan person type %s: %w", rawID, res.Err())
	}
	return res.Value(), nil
}

func (s *PostgresStore) GetAddressType(ctx context.Context, typeID id.AddressTypeID) (*models.AddressType, error) {
	rawID, name, description, err := s.classificationRow(ctx,
		`SELECT address_type_id, name, description FROM address_types WHERE address_type_id = $1`, typeID.String())
	if err != nil {
		return nil, err
	}
	parsed, err := id.ParseAddressTypeID(rawID)
	if err != nil {
		return nil, fmt.Errorf("scan address type: %w", err)
	}
	res := models.ReconstructAddressType(parsed, name, optPtr(description))
	if !res.IsSuccess() {
		return nil, fmt.Errorf("scan address type %s: %w", rawID, res.Err())
	}
	return res.Value(), nil
}

func (s *PostgresStore) GetPhoneNumberType(ctx context.Context, typeID id.PhoneNumberTypeID) (*models.PhoneNumberType, error) {
	rawID, name, description, err := s.classificationRow(ctx,
		`SELECT phone_number_type_id, name, description FROM phone_number_types WHERE phone_number_type_id = $1`, typeID.String())
	if err != nil {
		return nil, err
	}
	parsed, err := id.ParsePhoneNumberTypeID(rawID)
	if err != nil {
		return nil, fmt.Errorf("scan phone number type: %w", err)
	}
	res := models.ReconstructPhoneNumberType(parsed, name, optPtr(description))
	if !res.IsSuccess() {
		return nil, fmt.Errorf("scan phone number type %s: %w", rawID, res.Err())
	}
	return res.Value(), nil
}

func (s *PostgresStore) GetEmailAddressType(ctx context.Context, typeID id.EmailAddressTypeID) (*models.EmailAddressType, error) {
	rawID, name, description, err := s.classificationRow(ctx,
		`SELECT email_address_type_id, name, description FROM email_address_types WHERE email_address_type_id = $1`, typeID.String())
	if err != nil {
		return nil, err
	}
	parsed, err := id.ParseEmailAddressTypeID(rawID)
	if err != nil {
		return nil, fmt.Errorf("scan email address type: %w", err)
	}
	res := models.ReconstructEmailAddressType(parsed, name, optPtr(description))
	if !res.IsSuccess() {
		return nil, fmt.Errorf("scan email address type %s: %w", rawID, res.Err())
	}
	return res.Value(), nil
}

func (s *PostgresStore) classificationRow(ctx context.Context, query, arg string) (rawID, name, description string, err error) {
	err = s.db.QueryRowContext(ctx, query, arg).Scan(&rawID, &name, &description)
	if errors.Is(err, sql.ErrNoRows) {
		return "", "", "", sentinel.ErrNotFound
	}
	if err != nil {
		return "", "", "", fmt.Errorf("get classification type: %w", err)
	}
	return rawID, name, description, nil
}

// UpsertCountry writes a catalog entry. Used by the boot-time seeder.
func (s *PostgresStore) UpsertCountry(ctx context.Context, c *models.Country) error {
	d := c.Details()
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO countries (country_id, country_code, name, continent, capital, currency_code, country_dial_number)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (country_id) DO UPDATE SET
			country_code = EXCLUDED.country_code,
			name = EXCLUDED.name,
			continent = EXCLUDED.continent,
			capital = EXCLUDED.capital,
			currency_code = EXCLUDED.currency_code,
			country_dial_number = EXCLUDED.country_dial_number
	`, c.ID().String(), d.CountryCode(), d.Name(), d.Continent(), d.Capital(), d.CurrencyCode(), d.CountryDialNumber())
	if err != nil {
		return fmt.Errorf("upsert country: %w", err)
	}
	return nil
}

func (s *PostgresStore) UpsertPersonType(ctx context.Context, t *models.PersonType) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO person_types (person_type_id, name)
		VALUES ($1, $2)
		ON CONFLICT (person_type_id) DO UPDATE SET name = EXCLUDED.name
	`, t.ID().String(), t.Name())
	if err != nil {
		return fmt.Errorf("upsert person type: %w", err)
	}
	return nil
}

func (s *PostgresStore) UpsertAddressType(ctx context.Context, t *models.AddressType) error {
	return s.upsertClassification(ctx,
		`INSERT INTO address_types (address_type_id, name, description)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (address_type_id) DO UPDATE SET name = EXCLUDED.name, description = EXCLUDED.description`,
		t.ID().String(), t.Name(), t.Description())
}

func (s *PostgresStore) UpsertPhoneNumberType(ctx context.Context, t *models.PhoneNumberType) error {
	return s.upsertClassification(ctx,
		`INSERT INTO phone_number_types (phone_number_type_id, name, description)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (phone_number_type_id) DO UPDATE SET name = EXCLUDED.name, description = EXCLUDED.description`,
		t.ID().String(), t.Name(), t.Description())
}

func (s *PostgresStore) UpsertEmailAddressType(ctx context.Context, t *models.EmailAddressType) error {
	return s.upsertClassification(ctx,
		`INSERT INTO email_address_types (email_address_type_id, name, description)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (email_address_type_id) DO UPDATE SET name = EXCLUDED.name, description = EXCLUDED.description`,
		t.ID().String(), t.Name(), t.Description())
}

func (s *PostgresStore) upsertClassification(ctx context.Context, query, rawID, name, description string) error {
	if _, err := s.db.ExecContext(ctx, query, rawID, name, description); err != nil {
		return fmt.Errorf("upsert classification type: %w", err)
	}
	return nil
}

func scanCountry(r interface{ Scan(...any) error }) (*models.Country, error) {
	var rawID, code, name, continent, capital, currency, dial string
	if err := r.Scan(&rawID, &code, &name, &continent, &capital, &currency, &dial); err != nil {
		return nil, err
	}
	countryID, err := id.ParseCountryID(rawID)
	if err != nil {
		return nil, fmt.Errorf("scan country: %w", err)
	}
	details := models.NewCountryDetails(code, name, optPtr(continent), optPtr(capital), optPtr(currency), optPtr(dial))
	if !details.IsSuccess() {
		return nil, fmt.Errorf("scan country %s: corrupt details: %w", rawID, details.Err())
	}
	res := models.ReconstructCountry(countryID, details.Value())
	if !res.IsSuccess() {
		return nil, fmt.Errorf("scan country %s: %w", rawID, res.Err())
	}
	return res.Value(), nil
}

func optPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
