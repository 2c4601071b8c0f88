package person

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"connectsphere/internal/person/models"
	id "connectsphere/pkg/domain"
	"connectsphere/pkg/platform/sentinel"
)

// PostgresStore persists person aggregates across six tables, one per entity
// kind. Writes run in a single transaction; children are upserted by id
// (children are add-only, so no reconciliation delete is needed).
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// nullable maps the zero time to NULL, matching the "update timestamp absent
// until the first mutation" convention.
func nullable(t time.Time) sql.NullTime {
	return sql.NullTime{Time: t, Valid: !t.IsZero()}
}

func fromNullable(t sql.NullTime) time.Time {
	if !t.Valid {
		return time.Time{}
	}
	return t.Time
}

func (s *PostgresStore) Create(ctx context.Context, p *models.Person) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin create person: %w", err)
	}
	defer tx.Rollback()

	pr, addresses, phones, emails, infos, birth := snapshot(p)

	_, err = tx.ExecContext(ctx, `
		INSERT INTO persons (person_id, first_name, middle_name, last_name, title, suffix, created_at, updated_at, is_deleted)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, pr.ID.String(), pr.FirstName, pr.MiddleName, pr.LastName, pr.Title, pr.Suffix, pr.CreatedAt, nullable(pr.UpdatedAt), pr.IsDeleted)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return sentinel.ErrConflict
		}
		return fmt.Errorf("insert person: %w", err)
	}

	if err := upsertChildren(ctx, tx, addresses, phones, emails, infos, birth); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit create person: %w", err)
	}
	return nil
}

func (s *PostgresStore) Update(ctx context.Context, p *models.Person) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin update person: %w", err)
	}
	defer tx.Rollback()

	pr, addresses, phones, emails, infos, birth := snapshot(p)

	res, err := tx.ExecContext(ctx, `
		UPDATE persons
		SET first_name = $2, middle_name = $3, last_name = $4, title = $5, suffix = $6, updated_at = $7
		WHERE person_id = $1 AND NOT is_deleted
	`, pr.ID.String(), pr.FirstName, pr.MiddleName, pr.LastName, pr.Title, pr.Suffix, nullable(pr.UpdatedAt))
	if err != nil {
		return fmt.Errorf("update person: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update person rows affected: %w", err)
	}
	if affected == 0 {
		return sentinel.ErrNotFound
	}

	if err := upsertChildren(ctx, tx, addresses, phones, emails, infos, birth); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit update person: %w", err)
	}
	return nil
}

// SoftDelete marks the person row deleted. Children stay untouched; the
// aggregate simply disappears from every read path.
func (s *PostgresStore) SoftDelete(ctx context.Context, personID id.PersonID, now time.Time) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE persons
		SET is_deleted = TRUE, updated_at = $2
		WHERE person_id = $1 AND NOT is_deleted
	`, personID.String(), now)
	if err != nil {
		return fmt.Errorf("soft delete person: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("soft delete person rows affected: %w", err)
	}
	if affected == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

func (s *PostgresStore) GetByID(ctx context.Context, personID id.PersonID) (*models.Person, error) {
	pr, err := s.scanPerson(ctx, `
		SELECT person_id, first_name, middle_name, last_name, title, suffix, created_at, updated_at, is_deleted
		FROM persons
		WHERE person_id = $1 AND NOT is_deleted
	`, personID.String())
	if err != nil {
		return nil, err
	}
	return s.load(ctx, pr)
}

func (s *PostgresStore) GetByEmail(ctx context.Context, email string) (*models.Person, error) {
	pr, err := s.scanPerson(ctx, `
		SELECT p.person_id, p.first_name, p.middle_name, p.last_name, p.title, p.suffix, p.created_at, p.updated_at, p.is_deleted
		FROM persons p
		JOIN person_email_addresses e ON e.person_id = p.person_id
		WHERE e.email = $1 AND NOT e.is_deleted AND NOT p.is_deleted
		ORDER BY e.created_at
		LIMIT 1
	`, email)
	if err != nil {
		return nil, err
	}
	return s.load(ctx, pr)
}

// List returns one page of active persons ordered by creation time. Page
// numbers start at 1.
func (s *PostgresStore) List(ctx context.Context, page, size int) ([]*models.Person, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT person_id, first_name, middle_name, last_name, title, suffix, created_at, updated_at, is_deleted
		FROM persons
		WHERE NOT is_deleted
		ORDER BY created_at, person_id
		LIMIT $1 OFFSET $2
	`, size, (page-1)*size)
	if err != nil {
		return nil, fmt.Errorf("list persons: %w", err)
	}
	defer rows.Close()

	var prs []personRow
	for rows.Next() {
		pr, err := scanPersonRow(rows)
		if err != nil {
			return nil, err
		}
		prs = append(prs, pr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list persons: %w", err)
	}

	out := make([]*models.Person, 0, len(prs))
	for _, pr := range prs {
		p, err := s.load(ctx, pr)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func (s *PostgresStore) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM persons WHERE NOT is_deleted`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count persons: %w", err)
	}
	return n, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPersonRow(r rowScanner) (personRow, error) {
	var pr personRow
	var personID string
	var updatedAt sql.NullTime
	if err := r.Scan(&personID, &pr.FirstName, &pr.MiddleName, &pr.LastName, &pr.Title, &pr.Suffix, &pr.CreatedAt, &updatedAt, &pr.IsDeleted); err != nil {
		return personRow{}, err
	}
	parsed, err := id.ParsePersonID(personID)
	if err != nil {
		return personRow{}, fmt.Errorf("scan person row: %w", err)
	}
	pr.ID = parsed
	pr.UpdatedAt = fromNullable(updatedAt)
	return pr, nil
}

func (s *PostgresStore) scanPerson(ctx context.Context, query string, arg any) (personRow, error) {
	pr, err := scanPersonRow(s.db.QueryRowContext(ctx, query, arg))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return personRow{}, sentinel.ErrNotFound
		}
		return personRow{}, fmt.Errorf("get person: %w", err)
	}
	return pr, nil
}

// load fetches the child rows for one person and assembles the aggregate.
func (s *PostgresStore) load(ctx context.Context, pr personRow) (*models.Person, error) {
	personID := pr.ID.String()

	addresses, err := s.loadAddresses(ctx, personID)
	if err != nil {
		return nil, err
	}
	phones, err := s.loadPhoneNumbers(ctx, personID)
	if err != nil {
		return nil, err
	}
	emails, err := s.loadEmailAddresses(ctx, personID)
	if err != nil {
		return nil, err
	}
	infos, err := s.loadGovernmentalInfos(ctx, personID)
	if err != nil {
		return nil, err
	}
	birth, err := s.loadBirthDetails(ctx, personID)
	if err != nil {
		return nil, err
	}
	return assemble(pr, addresses, phones, emails, infos, birth)
}

func (s *PostgresStore) loadAddresses(ctx context.Context, personID string) ([]addressRow, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT address_id, person_id, address_type_id, country_id, address_line_1, address_line_2, city, postal_code, created_at, updated_at, is_deleted
		FROM person_addresses
		WHERE person_id = $1
		ORDER BY created_at, address_id
	`, personID)
	if err != nil {
		return nil, fmt.Errorf("load addresses: %w", err)
	}
	defer rows.Close()

	var out []addressRow
	for rows.Next() {
		var r addressRow
		var addressID, owner, typeID, countryID string
		var updatedAt sql.NullTime
		if err := rows.Scan(&addressID, &owner, &typeID, &countryID, &r.Line1, &r.Line2, &r.City, &r.PostalCode, &r.CreatedAt, &updatedAt, &r.IsDeleted); err != nil {
			return nil, fmt.Errorf("scan address: %w", err)
		}
		if r.ID, err = id.ParseAddressID(addressID); err != nil {
			return nil, fmt.Errorf("scan address: %w", err)
		}
		if r.PersonID, err = id.ParsePersonID(owner); err != nil {
			return nil, fmt.Errorf("scan address: %w", err)
		}
		if r.AddressTypeID, err = id.ParseAddressTypeID(typeID); err != nil {
			return nil, fmt.Errorf("scan address: %w", err)
		}
		if r.CountryID, err = id.ParseCountryID(countryID); err != nil {
			return nil, fmt.Errorf("scan address: %w", err)
		}
		r.UpdatedAt = fromNullable(updatedAt)
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *PostgresStore) loadPhoneNumbers(ctx context.Context, personID string) ([]phoneNumberRow, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT phone_number_id, person_id, phone_number_type_id, country_id, number, created_at, updated_at, is_deleted
		FROM person_phone_numbers
		WHERE person_id = $1
		ORDER BY created_at, phone_number_id
	`, personID)
	if err != nil {
		return nil, fmt.Errorf("load phone numbers: %w", err)
	}
	defer rows.Close()

	var out []phoneNumberRow
	for rows.Next() {
		var r phoneNumberRow
		var phoneID, owner, typeID, countryID string
		var updatedAt sql.NullTime
		if err := rows.Scan(&phoneID, &owner, &typeID, &countryID, &r.Number, &r.CreatedAt, &updatedAt, &r.IsDeleted); err != nil {
			return nil, fmt.Errorf("scan phone number: %w", err)
		}
		if r.ID, err = id.ParsePhoneNumberID(phoneID); err != nil {
			return nil, fmt.Errorf("scan phone number: %w", err)
		}
		if r.PersonID, err = id.ParsePersonID(owner); err != nil {
			return nil, fmt.Errorf("scan phone number: %w", err)
		}
		if r.PhoneNumberTypeID, err = id.ParsePhoneNumberTypeID(typeID); err != nil {
			return nil, fmt.Errorf("scan phone number: %w", err)
		}
		if r.CountryID, err = id.ParseCountryID(countryID); err != nil {
			return nil, fmt.Errorf("scan phone number: %w", err)
		}
		r.UpdatedAt = fromNullable(updatedAt)
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *PostgresStore) loadEmailAddresses(ctx context.Context, personID string) ([]emailAddressRow, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT email_address_id, person_id, email_address_type_id, email, created_at, updated_at, is_deleted
		FROM person_email_addresses
		WHERE person_id = $1
		ORDER BY created_at, email_address_id
	`, personID)
	if err != nil {
		return nil, fmt.Errorf("load email addresses: %w", err)
	}
	defer rows.Close()

	var out []emailAddressRow
	for rows.Next() {
		var r emailAddressRow
		var emailID, owner, typeID string
		var updatedAt sql.NullTime
		if err := rows.Scan(&emailID, &owner, &typeID, &r.Email, &r.CreatedAt, &updatedAt, &r.IsDeleted); err != nil {
			return nil, fmt.Errorf("scan email address: %w", err)
		}
		if r.ID, err = id.ParseEmailAddressID(emailID); err != nil {
			return nil, fmt.Errorf("scan email address: %w", err)
		}
		if r.PersonID, err = id.ParsePersonID(owner); err != nil {
			return nil, fmt.Errorf("scan email address: %w", err)
		}
		if r.EmailAddressTypeID, err = id.ParseEmailAddressTypeID(typeID); err != nil {
			return nil, fmt.Errorf("scan email address: %w", err)
		}
		r.UpdatedAt = fromNullable(updatedAt)
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *PostgresStore) loadGovernmentalInfos(ctx context.Context, personID string) ([]governmentalInfoRow, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT governmental_info_id, person_id, country_id, gov_id_number, passport_number, created_at, updated_at, is_deleted
		FROM person_governmental_infos
		WHERE person_id = $1
		ORDER BY created_at, governmental_info_id
	`, personID)
	if err != nil {
		return nil, fmt.Errorf("load governmental infos: %w", err)
	}
	defer rows.Close()

	var out []governmentalInfoRow
	for rows.Next() {
		var r governmentalInfoRow
		var infoID, owner, countryID string
		var updatedAt sql.NullTime
		if err := rows.Scan(&infoID, &owner, &countryID, &r.GovIDNumber, &r.PassportNumber, &r.CreatedAt, &updatedAt, &r.IsDeleted); err != nil {
			return nil, fmt.Errorf("scan governmental info: %w", err)
		}
		if r.ID, err = id.ParseGovernmentalInfoID(infoID); err != nil {
			return nil, fmt.Errorf("scan governmental info: %w", err)
		}
		if r.PersonID, err = id.ParsePersonID(owner); err != nil {
			return nil, fmt.Errorf("scan governmental info: %w", err)
		}
		if r.CountryID, err = id.ParseCountryID(countryID); err != nil {
			return nil, fmt.Errorf("scan governmental info: %w", err)
		}
		r.UpdatedAt = fromNullable(updatedAt)
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *PostgresStore) loadBirthDetails(ctx context.Context, personID string) (*birthDetailsRow, error) {
	var r birthDetailsRow
	var recordID, owner, countryID string
	var updatedAt sql.NullTime
	err := s.db.QueryRowContext(ctx, `
		SELECT birth_details_id, person_id, country_id, birth_date, birth_city, created_at, updated_at, is_deleted
		FROM person_birth_details
		WHERE person_id = $1
	`, personID).Scan(&recordID, &owner, &countryID, &r.BirthDate, &r.BirthCity, &r.CreatedAt, &updatedAt, &r.IsDeleted)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load birth details: %w", err)
	}
	if r.ID, err = id.ParseBirthDetailsID(recordID); err != nil {
		return nil, fmt.Errorf("scan birth details: %w", err)
	}
	if r.PersonID, err = id.ParsePersonID(owner); err != nil {
		return nil, fmt.Errorf("scan birth details: %w", err)
	}
	if r.CountryID, err = id.ParseCountryID(countryID); err != nil {
		return nil, fmt.Errorf("scan birth details: %w", err)
	}
	r.UpdatedAt = fromNullable(updatedAt)
	return &r, nil
}

func upsertChildren(ctx context.Context, tx *sql.Tx, addresses []addressRow, phones []phoneNumberRow, emails []emailAddressRow, infos []governmentalInfoRow, birth *birthDetailsRow) error {
	for _, r := range addresses {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO person_addresses (address_id, person_id, address_type_id, country_id, address_line_1, address_line_2, city, postal_code, created_at, updated_at, is_deleted)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			ON CONFLICT (address_id) DO UPDATE SET
				address_type_id = EXCLUDED.address_type_id,
				country_id = EXCLUDED.country_id,
				address_line_1 = EXCLUDED.address_line_1,
				address_line_2 = EXCLUDED.address_line_2,
				city = EXCLUDED.city,
				postal_code = EXCLUDED.postal_code,
				updated_at = EXCLUDED.updated_at,
				is_deleted = EXCLUDED.is_deleted
		`, r.ID.String(), r.PersonID.String(), r.AddressTypeID.String(), r.CountryID.String(), r.Line1, r.Line2, r.City, r.PostalCode, r.CreatedAt, nullable(r.UpdatedAt), r.IsDeleted)
		if err != nil {
			return fmt.Errorf("upsert address: %w", err)
		}
	}

	for _, r := range phones {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO person_phone_numbers (phone_number_id, person_id, phone_number_type_id, country_id, number, created_at, updated_at, is_deleted)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			ON CONFLICT (phone_number_id) DO UPDATE SET
				phone_number_type_id = EXCLUDED.phone_number_type_id,
				country_id = EXCLUDED.country_id,
				number = EXCLUDED.number,
				updated_at = EXCLUDED.updated_at,
				is_deleted = EXCLUDED.is_deleted
		`, r.ID.String(), r.PersonID.String(), r.PhoneNumberTypeID.String(), r.CountryID.String(), r.Number, r.CreatedAt, nullable(r.UpdatedAt), r.IsDeleted)
		if err != nil {
			return fmt.Errorf("upsert phone number: %w", err)
		}
	}

	for _, r := range emails {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO person_email_addresses (email_address_id, person_id, email_address_type_id, email, created_at, updated_at, is_deleted)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			ON CONFLICT (email_address_id) DO UPDATE SET
				email_address_type_id = EXCLUDED.email_address_type_id,
				email = EXCLUDED.email,
				updated_at = EXCLUDED.updated_at,
				is_deleted = EXCLUDED.is_deleted
		`, r.ID.String(), r.PersonID.String(), r.EmailAddressTypeID.String(), r.Email, r.CreatedAt, nullable(r.UpdatedAt), r.IsDeleted)
		if err != nil {
			return fmt.Errorf("upsert email address: %w", err)
		}
	}

	for _, r := range infos {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO person_governmental_infos (governmental_info_id, person_id, country_id, gov_id_number, passport_number, created_at, updated_at, is_deleted)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			ON CONFLICT (governmental_info_id) DO UPDATE SET
				country_id = EXCLUDED.country_id,
				gov_id_number = EXCLUDED.gov_id_number,
				passport_number = EXCLUDED.passport_number,
				updated_at = EXCLUDED.updated_at,
				is_deleted = EXCLUDED.is_deleted
		`, r.ID.String(), r.PersonID.String(), r.CountryID.String(), r.GovIDNumber, r.PassportNumber, r.CreatedAt, nullable(r.UpdatedAt), r.IsDeleted)
		if err != nil {
			return fmt.Errorf("upsert governmental info: %w", err)
		}
	}

	if birth != nil {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO person_birth_details (birth_details_id, person_id, country_id, birth_date, birth_city, created_at, updated_at, is_deleted)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			ON CONFLICT (birth_details_id) DO UPDATE SET
				country_id = EXCLUDED.country_id,
				birth_date = EXCLUDED.birth_date,
				birth_city = EXCLUDED.birth_city,
				updated_at = EXCLUDED.updated_at,
				is_deleted = EXCLUDED.is_deleted
		`, birth.ID.String(), birth.PersonID.String(), birth.CountryID.String(), birth.BirthDate, birth.BirthCity, birth.CreatedAt, nullable(birth.UpdatedAt), birth.IsDeleted)
		if err != nil {
			return fmt.Errorf("upsert birth details: %w", err)
		}
	}

	return nil
}
