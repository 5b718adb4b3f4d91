package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"

	"github.com/iliyamo/eventsphere/internal/model"
)

// mysqlDuplicateEntry is the server error number for a unique key violation.
const mysqlDuplicateEntry = 1062

func isDuplicate(err error) bool {
	var me *mysql.MySQLError
	return errors.As(err, &me) && me.Number == mysqlDuplicateEntry
}

// nullable maps the empty string to SQL NULL so optional unique columns
// (google_id) do not collide.
func nullable(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// MySQLAccountRepo mirrors the accounts table.
type MySQLAccountRepo struct{ DB *sql.DB }

func NewMySQLAccountRepo(db *sql.DB) *MySQLAccountRepo { return &MySQLAccountRepo{DB: db} }

const accountColumns = "id,email,name,picture,google_id,password_hash,role,created_at"

func (r *MySQLAccountRepo) FindByEmail(ctx context.Context, email string) (model.Account, error) {
	return r.findOne(ctx, "SELECT "+accountColumns+" FROM accounts WHERE email=? LIMIT 1", email)
}

func (r *MySQLAccountRepo) FindByID(ctx context.Context, id string) (model.Account, error) {
	return r.findOne(ctx, "SELECT "+accountColumns+" FROM accounts WHERE id=? LIMIT 1", id)
}

func (r *MySQLAccountRepo) findOne(ctx context.Context, q string, arg string) (model.Account, error) {
	var (
		a                         model.Account
		picture, googleID, passwd sql.NullString
	)
	err := r.DB.QueryRowContext(ctx, q, arg).Scan(
		&a.ID, &a.Email, &a.Name, &picture, &googleID, &passwd, &a.Role, &a.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Account{}, ErrNotFound
	}
	if err != nil {
		return model.Account{}, fmt.Errorf("query account: %w", err)
	}
	a.Picture = picture.String
	a.GoogleID = googleID.String
	a.PasswordHash = passwd.String
	return a, nil
}

func (r *MySQLAccountRepo) Insert(ctx context.Context, a *model.Account) error {
	ensureID(&a.ID)
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO accounts ("+accountColumns+") VALUES (?,?,?,?,?,?,?,?)",
		a.ID, a.Email, a.Name, nullable(a.Picture), nullable(a.GoogleID), nullable(a.PasswordHash), a.Role, a.CreatedAt)
	if err != nil {
		if isDuplicate(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("insert account: %w", err)
	}
	return nil
}

func (r *MySQLAccountRepo) UpdateProfile(ctx context.Context, id, name, picture string) error {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE accounts SET name=?, picture=? WHERE id=?", name, nullable(picture), id)
	if err != nil {
		return fmt.Errorf("update account: %w", err)
	}
	// RowsAffected is 0 when the values are unchanged, so confirm existence.
	if n, _ := res.RowsAffected(); n == 0 {
		if _, err := r.FindByID(ctx, id); err != nil {
			return err
		}
	}
	return nil
}

// MySQLBookingRepo mirrors the bookings table.
type MySQLBookingRepo struct{ DB *sql.DB }

func NewMySQLBookingRepo(db *sql.DB) *MySQLBookingRepo { return &MySQLBookingRepo{DB: db} }

const bookingColumns = "id,event_id,client_name,client_email,client_phone,event_date,guest_count,package,budget,message,status,created_at"

func (r *MySQLBookingRepo) Insert(ctx context.Context, b *model.Booking) error {
	ensureID(&b.ID)
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO bookings ("+bookingColumns+") VALUES (?,?,?,?,?,?,?,?,?,?,?,?)",
		b.ID, nullable(b.EventID), b.ClientName, b.ClientEmail, b.ClientPhone, b.EventDate,
		b.GuestCount, b.Package, b.Budget, b.Message, b.Status, b.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}
	return nil
}

func (r *MySQLBookingRepo) FindByID(ctx context.Context, id string) (model.Booking, error) {
	row := r.DB.QueryRowContext(ctx, "SELECT "+bookingColumns+" FROM bookings WHERE id=? LIMIT 1", id)
	b, err := scanBooking(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Booking{}, ErrNotFound
	}
	if err != nil {
		return model.Booking{}, fmt.Errorf("query booking: %w", err)
	}
	return b, nil
}

func (r *MySQLBookingRepo) List(ctx context.Context, status string) ([]model.Booking, error) {
	q := "SELECT " + bookingColumns + " FROM bookings"
	args := []interface{}{}
	if status != "" {
		q += " WHERE status=?"
		args = append(args, status)
	}
	q += " ORDER BY created_at"
	rows, err := r.DB.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()
	out := []model.Booking{}
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(s scanner) (model.Booking, error) {
	var (
		b       model.Booking
		eventID sql.NullString
	)
	err := s.Scan(&b.ID, &eventID, &b.ClientName, &b.ClientEmail, &b.ClientPhone, &b.EventDate,
		&b.GuestCount, &b.Package, &b.Budget, &b.Message, &b.Status, &b.CreatedAt)
	b.EventID = eventID.String
	return b, err
}

// MySQLCatalogRepo reads the catalog tables.  List-valued attributes
// (gallery, features, timeline) live in JSON columns.
type MySQLCatalogRepo struct{ DB *sql.DB }

func NewMySQLCatalogRepo(db *sql.DB) *MySQLCatalogRepo { return &MySQLCatalogRepo{DB: db} }

const eventColumns = "id,title,category,description,short_description,image_url,gallery,price_basic,price_premium,price_luxury,features,timeline,is_featured"

func (r *MySQLCatalogRepo) ListEvents(ctx context.Context) ([]model.EventPackage, error) {
	return r.queryEvents(ctx, "SELECT "+eventColumns+" FROM events ORDER BY seq")
}

func (r *MySQLCatalogRepo) ListEventsByCategory(ctx context.Context, category string) ([]model.EventPackage, error) {
	return r.queryEvents(ctx, "SELECT "+eventColumns+" FROM events WHERE category=? ORDER BY seq", category)
}

func (r *MySQLCatalogRepo) ListFeaturedEvents(ctx context.Context, limit int) ([]model.EventPackage, error) {
	if limit <= 0 {
		return r.queryEvents(ctx, "SELECT "+eventColumns+" FROM events WHERE is_featured=1 ORDER BY seq")
	}
	return r.queryEvents(ctx, "SELECT "+eventColumns+" FROM events WHERE is_featured=1 ORDER BY seq LIMIT ?", limit)
}

func (r *MySQLCatalogRepo) FindEvent(ctx context.Context, id string) (model.EventPackage, error) {
	events, err := r.queryEvents(ctx, "SELECT "+eventColumns+" FROM events WHERE id=? LIMIT 1", id)
	if err != nil {
		return model.EventPackage{}, err
	}
	if len(events) == 0 {
		return model.EventPackage{}, ErrNotFound
	}
	return events[0], nil
}

func (r *MySQLCatalogRepo) queryEvents(ctx context.Context, q string, args ...interface{}) ([]model.EventPackage, error) {
	rows, err := r.DB.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	defer rows.Close()
	out := []model.EventPackage{}
	for rows.Next() {
		var (
			e                           model.EventPackage
			gallery, features, timeline []byte
		)
		if err := rows.Scan(&e.ID, &e.Title, &e.Category, &e.Description, &e.ShortDescription, &e.ImageURL,
			&gallery, &e.Pricing.Basic, &e.Pricing.Premium, &e.Pricing.Luxury, &features, &timeline, &e.IsFeatured); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		if err := unmarshalJSONColumns(
			jsonColumn{gallery, &e.Gallery},
			jsonColumn{features, &e.Features},
			jsonColumn{timeline, &e.Timeline},
		); err != nil {
			return nil, fmt.Errorf("decode event %s: %w", e.ID, err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *MySQLCatalogRepo) ListTestimonials(ctx context.Context) ([]model.Testimonial, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id,client_name,client_image,rating,review,event_type FROM testimonials ORDER BY seq")
	if err != nil {
		return nil, fmt.Errorf("query testimonials: %w", err)
	}
	defer rows.Close()
	out := []model.Testimonial{}
	for rows.Next() {
		var t model.Testimonial
		if err := rows.Scan(&t.ID, &t.ClientName, &t.ClientImage, &t.Rating, &t.Review, &t.EventType); err != nil {
			return nil, fmt.Errorf("scan testimonial: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *MySQLCatalogRepo) ListServices(ctx context.Context) ([]model.Service, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id,title,description,icon,features FROM services ORDER BY seq")
	if err != nil {
		return nil, fmt.Errorf("query services: %w", err)
	}
	defer rows.Close()
	out := []model.Service{}
	for rows.Next() {
		var (
			s        model.Service
			features []byte
		)
		if err := rows.Scan(&s.ID, &s.Title, &s.Description, &s.Icon, &features); err != nil {
			return nil, fmt.Errorf("scan service: %w", err)
		}
		if err := unmarshalJSONColumns(jsonColumn{features, &s.Features}); err != nil {
			return nil, fmt.Errorf("decode service %s: %w", s.ID, err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *MySQLCatalogRepo) ListTeam(ctx context.Context) ([]model.TeamMember, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id,name,position,image,bio FROM team ORDER BY seq")
	if err != nil {
		return nil, fmt.Errorf("query team: %w", err)
	}
	defer rows.Close()
	out := []model.TeamMember{}
	for rows.Next() {
		var m model.TeamMember
		if err := rows.Scan(&m.ID, &m.Name, &m.Position, &m.Image, &m.Bio); err != nil {
			return nil, fmt.Errorf("scan team member: %w", err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *MySQLCatalogRepo) InsertEvent(ctx context.Context, e *model.EventPackage) error {
	ensureID(&e.ID)
	gallery, _ := json.Marshal(nonNil(e.Gallery))
	features, _ := json.Marshal(nonNil(e.Features))
	timeline, _ := json.Marshal(e.Timeline)
	if e.Timeline == nil {
		timeline = []byte("[]")
	}
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO events ("+eventColumns+") VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?)",
		e.ID, e.Title, e.Category, e.Description, e.ShortDescription, e.ImageURL, gallery,
		e.Pricing.Basic, e.Pricing.Premium, e.Pricing.Luxury, features, timeline, e.IsFeatured)
	return err
}

func (r *MySQLCatalogRepo) InsertTestimonial(ctx context.Context, t *model.Testimonial) error {
	ensureID(&t.ID)
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO testimonials (id,client_name,client_image,rating,review,event_type) VALUES (?,?,?,?,?,?)",
		t.ID, t.ClientName, t.ClientImage, t.Rating, t.Review, t.EventType)
	return err
}

func (r *MySQLCatalogRepo) InsertService(ctx context.Context, s *model.Service) error {
	ensureID(&s.ID)
	features, _ := json.Marshal(nonNil(s.Features))
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO services (id,title,description,icon,features) VALUES (?,?,?,?,?)",
		s.ID, s.Title, s.Description, s.Icon, features)
	return err
}

func (r *MySQLCatalogRepo) InsertTeamMember(ctx context.Context, m *model.TeamMember) error {
	ensureID(&m.ID)
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO team (id,name,position,image,bio) VALUES (?,?,?,?,?)",
		m.ID, m.Name, m.Position, m.Image, m.Bio)
	return err
}

type jsonColumn struct {
	raw []byte
	dst interface{}
}

func unmarshalJSONColumns(cols ...jsonColumn) error {
	for _, c := range cols {
		if len(c.raw) == 0 {
			continue
		}
		if err := json.Unmarshal(c.raw, c.dst); err != nil {
			return err
		}
	}
	return nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// NewMySQLStore wires the MySQL repositories onto one pool.
func NewMySQLStore(db *sql.DB) Store {
	return Store{
		Accounts: NewMySQLAccountRepo(db),
		Bookings: NewMySQLBookingRepo(db),
		Catalog:  NewMySQLCatalogRepo(db),
		Close:    func(context.Context) error { return db.Close() },
	}
}
