package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/wheelads"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ wheelads.ListingService = (*ListingService)(nil)

// ListingService implements wheelads.ListingService using SQLite.
type ListingService struct {
	db *DB
}

// NewListingService creates a new ListingService.
func NewListingService(db *DB) *ListingService {
	return &ListingService{db: db}
}

// hashContent computes xxHash of content and returns hex string.
func hashContent(content string) string {
	h := xxhash.Sum64String(content)
	b := make([]byte, 8)
	for i := range b {
		b[i] = byte(h >> (56 - 8*i))
	}
	return hex.EncodeToString(b)
}

const listingColumns = `url, title, location, description, price,
	manufacturer, colour, diameter, width_front, width_rear, bolt_pattern, hub_bore, et,
	tyre_manufacturer, season,
	front_width, front_profile, front_diameter, front_dot,
	rear_width, rear_profile, rear_diameter, rear_dot,
	images`

// CreateRun stores listings as a new run inside a single transaction.
func (s *ListingService) CreateRun(ctx context.Context, listings []*wheelads.Listing) (*wheelads.Run, error) {
	for _, l := range listings {
		if err := l.Validate(); err != nil {
			return nil, err
		}
	}

	run := &wheelads.Run{
		ID:        uuid.New().String(),
		CreatedAt: time.Now().UTC().Truncate(time.Second),
		Listings:  len(listings),
	}
	createdAt := run.CreatedAt.Format(time.RFC3339)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `INSERT INTO runs (id, created_at) VALUES (?, ?)`, run.ID, createdAt); err != nil {
		return nil, err
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO listings (id, run_id, position, content_hash, scraped_at, `+listingColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return nil, err
	}
	defer stmt.Close()

	for i, l := range listings {
		args := []any{uuid.New().String(), run.ID, i, hashContent(l.Description), createdAt}
		args = append(args, listingArgs(l)...)
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return nil, fmt.Errorf("inserting %s: %w", l.URL, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return run, nil
}

// FindRunByID retrieves a run by ID.
func (s *ListingService) FindRunByID(ctx context.Context, id string) (*wheelads.Run, error) {
	var run wheelads.Run
	var createdAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT r.id, r.created_at, (SELECT COUNT(*) FROM listings l WHERE l.run_id = r.id)
		FROM runs r
		WHERE r.id = ?
	`, id).Scan(&run.ID, &createdAt, &run.Listings)

	if err == sql.ErrNoRows {
		return nil, wheelads.Errorf(wheelads.ENOTFOUND, "run not found")
	}
	if err != nil {
		return nil, err
	}

	run.CreatedAt, err = parseRFC3339(createdAt, "created_at")
	if err != nil {
		return nil, err
	}
	return &run, nil
}

// FindRuns retrieves runs, newest first.
func (s *ListingService) FindRuns(ctx context.Context, filter wheelads.RunFilter) ([]*wheelads.Run, error) {
	var query strings.Builder
	var args []any

	query.WriteString(`
		SELECT r.id, r.created_at, (SELECT COUNT(*) FROM listings l WHERE l.run_id = r.id)
		FROM runs r
		ORDER BY r.created_at DESC, r.rowid DESC`)
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []*wheelads.Run
	for rows.Next() {
		var run wheelads.Run
		var createdAt string
		if err := rows.Scan(&run.ID, &createdAt, &run.Listings); err != nil {
			return nil, err
		}
		run.CreatedAt, err = parseRFC3339(createdAt, "created_at")
		if err != nil {
			return nil, err
		}
		runs = append(runs, &run)
	}
	return runs, rows.Err()
}

// FindListings retrieves listings matching the filter in the order they
// were archived.
func (s *ListingService) FindListings(ctx context.Context, filter wheelads.ListingFilter) ([]*wheelads.Listing, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + listingColumns + " FROM listings WHERE 1=1")

	if filter.RunID != nil {
		query.WriteString(" AND run_id = ?")
		args = append(args, *filter.RunID)
	}
	if filter.URL != nil {
		query.WriteString(" AND url = ?")
		args = append(args, *filter.URL)
	}

	query.WriteString(" ORDER BY rowid ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var listings []*wheelads.Listing
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, err
		}
		listings = append(listings, l)
	}
	return listings, rows.Err()
}

// DeleteRun removes a run and, by cascade, its listings.
func (s *ListingService) DeleteRun(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM runs WHERE id = ?`, id)
	if err != nil {
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return wheelads.Errorf(wheelads.ENOTFOUND, "run not found")
	}
	return nil
}

func tyreArgs(t wheelads.Tyre) []any {
	var w, p, d sql.NullString
	if t.Size != nil {
		w = sql.NullString{String: t.Size.Width, Valid: true}
		p = sql.NullString{String: t.Size.Profile, Valid: true}
		d = sql.NullString{String: t.Size.Diameter, Valid: true}
	}
	return []any{w, p, d, nullable(t.DOT)}
}

func listingArgs(l *wheelads.Listing) []any {
	args := []any{
		l.URL, nullable(l.Title), nullable(l.Location), l.Description, nullable(l.Price),
		nullable(l.Manufacturer), nullable(l.Colour), nullable(l.Diameter),
		nullable(l.WidthFront), nullable(l.WidthRear), nullable(l.BoltPattern),
		nullable(l.HubBore), nullable(l.Offset),
		nullable(l.TyreManufacturer), nullable(l.Season.Value()),
	}
	args = append(args, tyreArgs(l.Front)...)
	args = append(args, tyreArgs(l.Rear)...)
	return append(args, strings.Join(l.Images, wheelads.ImageSeparator))
}

type tyreColumns struct {
	width, profile, diameter, dot sql.NullString
}

func (c tyreColumns) tyre() wheelads.Tyre {
	t := wheelads.Tyre{DOT: value(c.dot)}
	if c.width.Valid {
		t.Size = &wheelads.TyreSize{Width: c.width.String, Profile: c.profile.String, Diameter: c.diameter.String}
	}
	return t
}

func scanListing(rows *sql.Rows) (*wheelads.Listing, error) {
	var l wheelads.Listing
	var title, location, price, manufacturer, colour, diameter sql.NullString
	var widthFront, widthRear, boltPattern, hubBore, offset sql.NullString
	var tyreManufacturer, season sql.NullString
	var front, rear tyreColumns
	var images string

	if err := rows.Scan(
		&l.URL, &title, &location, &l.Description, &price,
		&manufacturer, &colour, &diameter, &widthFront, &widthRear, &boltPattern, &hubBore, &offset,
		&tyreManufacturer, &season,
		&front.width, &front.profile, &front.diameter, &front.dot,
		&rear.width, &rear.profile, &rear.diameter, &rear.dot,
		&images,
	); err != nil {
		return nil, err
	}

	l.Title, l.Location, l.Price = value(title), value(location), value(price)
	l.Manufacturer, l.Colour, l.Diameter = value(manufacturer), value(colour), value(diameter)
	l.WidthFront, l.WidthRear = value(widthFront), value(widthRear)
	l.BoltPattern, l.HubBore, l.Offset = value(boltPattern), value(hubBore), value(offset)
	l.TyreManufacturer = value(tyreManufacturer)
	l.Season = wheelads.ParseSeason(season.String)
	l.Front, l.Rear = front.tyre(), rear.tyre()
	if images != "" {
		l.Images = strings.Split(images, wheelads.ImageSeparator)
	}
	return &l, nil
}
