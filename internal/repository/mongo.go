package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/iliyamo/eventsphere/internal/model"
)

// Collection names shared by the Mongo repositories and the index setup in
// package database.
const (
	AccountsCollection     = "users"
	BookingsCollection     = "bookings"
	EventsCollection       = "events"
	TestimonialsCollection = "testimonials"
	ServicesCollection     = "services"
	TeamCollection         = "team"
)

// MongoAccountRepo stores accounts in the users collection.
type MongoAccountRepo struct{ coll *mongo.Collection }

func NewMongoAccountRepo(db *mongo.Database) *MongoAccountRepo {
	return &MongoAccountRepo{coll: db.Collection(AccountsCollection)}
}

func (r *MongoAccountRepo) FindByEmail(ctx context.Context, email string) (model.Account, error) {
	return r.findBy(ctx, "email", email)
}

func (r *MongoAccountRepo) FindByID(ctx context.Context, id string) (model.Account, error) {
	return r.findBy(ctx, "_id", id)
}

func (r *MongoAccountRepo) findBy(ctx context.Context, key, val string) (model.Account, error) {
	var acc model.Account
	err := r.coll.FindOne(ctx, bson.M{key: val}).Decode(&acc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Account{}, ErrNotFound
	}
	if err != nil {
		return model.Account{}, fmt.Errorf("find account by %s: %w", key, err)
	}
	return acc, nil
}

func (r *MongoAccountRepo) Insert(ctx context.Context, acc *model.Account) error {
	ensureID(&acc.ID)
	if _, err := r.coll.InsertOne(ctx, acc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("insert account: %w", err)
	}
	return nil
}

func (r *MongoAccountRepo) UpdateProfile(ctx context.Context, id, name, picture string) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"name": name, "picture": picture}})
	if err != nil {
		return fmt.Errorf("update account: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// MongoBookingRepo stores booking requests.
type MongoBookingRepo struct{ coll *mongo.Collection }

func NewMongoBookingRepo(db *mongo.Database) *MongoBookingRepo {
	return &MongoBookingRepo{coll: db.Collection(BookingsCollection)}
}

func (r *MongoBookingRepo) Insert(ctx context.Context, b *model.Booking) error {
	ensureID(&b.ID)
	if _, err := r.coll.InsertOne(ctx, b); err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}
	return nil
}

func (r *MongoBookingRepo) FindByID(ctx context.Context, id string) (model.Booking, error) {
	var b model.Booking
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&b)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Booking{}, ErrNotFound
	}
	if err != nil {
		return model.Booking{}, fmt.Errorf("find booking: %w", err)
	}
	return b, nil
}

func (r *MongoBookingRepo) List(ctx context.Context, status string) ([]model.Booking, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}
	out := []model.Booking{}
	if err := findAll(ctx, r.coll, filter, nil, &out); err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return out, nil
}

// MongoCatalogRepo reads the four reference collections.
type MongoCatalogRepo struct{ db *mongo.Database }

func NewMongoCatalogRepo(db *mongo.Database) *MongoCatalogRepo {
	return &MongoCatalogRepo{db: db}
}

func (r *MongoCatalogRepo) ListEvents(ctx context.Context) ([]model.EventPackage, error) {
	out := []model.EventPackage{}
	if err := findAll(ctx, r.db.Collection(EventsCollection), bson.M{}, nil, &out); err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return out, nil
}

func (r *MongoCatalogRepo) ListEventsByCategory(ctx context.Context, category string) ([]model.EventPackage, error) {
	out := []model.EventPackage{}
	if err := findAll(ctx, r.db.Collection(EventsCollection), bson.M{"category": category}, nil, &out); err != nil {
		return nil, fmt.Errorf("list events by category: %w", err)
	}
	return out, nil
}

func (r *MongoCatalogRepo) ListFeaturedEvents(ctx context.Context, limit int) ([]model.EventPackage, error) {
	opts := options.Find()
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}
	out := []model.EventPackage{}
	if err := findAll(ctx, r.db.Collection(EventsCollection), bson.M{"isFeatured": true}, opts, &out); err != nil {
		return nil, fmt.Errorf("list featured events: %w", err)
	}
	return out, nil
}

func (r *MongoCatalogRepo) FindEvent(ctx context.Context, id string) (model.EventPackage, error) {
	var e model.EventPackage
	err := r.db.Collection(EventsCollection).FindOne(ctx, bson.M{"_id": id}).Decode(&e)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.EventPackage{}, ErrNotFound
	}
	if err != nil {
		return model.EventPackage{}, fmt.Errorf("find event: %w", err)
	}
	return e, nil
}

func (r *MongoCatalogRepo) ListTestimonials(ctx context.Context) ([]model.Testimonial, error) {
	out := []model.Testimonial{}
	if err := findAll(ctx, r.db.Collection(TestimonialsCollection), bson.M{}, nil, &out); err != nil {
		return nil, fmt.Errorf("list testimonials: %w", err)
	}
	return out, nil
}

func (r *MongoCatalogRepo) ListServices(ctx context.Context) ([]model.Service, error) {
	out := []model.Service{}
	if err := findAll(ctx, r.db.Collection(ServicesCollection), bson.M{}, nil, &out); err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	return out, nil
}

func (r *MongoCatalogRepo) ListTeam(ctx context.Context) ([]model.TeamMember, error) {
	out := []model.TeamMember{}
	if err := findAll(ctx, r.db.Collection(TeamCollection), bson.M{}, nil, &out); err != nil {
		return nil, fmt.Errorf("list team: %w", err)
	}
	return out, nil
}

func (r *MongoCatalogRepo) InsertEvent(ctx context.Context, e *model.EventPackage) error {
	ensureID(&e.ID)
	_, err := r.db.Collection(EventsCollection).InsertOne(ctx, e)
	return err
}

func (r *MongoCatalogRepo) InsertTestimonial(ctx context.Context, t *model.Testimonial) error {
	ensureID(&t.ID)
	_, err := r.db.Collection(TestimonialsCollection).InsertOne(ctx, t)
	return err
}

func (r *MongoCatalogRepo) InsertService(ctx context.Context, s *model.Service) error {
	ensureID(&s.ID)
	_, err := r.db.Collection(ServicesCollection).InsertOne(ctx, s)
	return err
}

func (r *MongoCatalogRepo) InsertTeamMember(ctx context.Context, m *model.TeamMember) error {
	ensureID(&m.ID)
	_, err := r.db.Collection(TeamCollection).InsertOne(ctx, m)
	return err
}

// findAll runs a find and decodes every document into out, which must be a
// pointer to a slice.
func findAll(ctx context.Context, coll *mongo.Collection, filter bson.M, opts *options.FindOptions, out interface{}) error {
	var (
		cur *mongo.Cursor
		err error
	)
	if opts != nil {
		cur, err = coll.Find(ctx, filter, opts)
	} else {
		cur, err = coll.Find(ctx, filter)
	}
	if err != nil {
		return err
	}
	return cur.All(ctx, out)
}

// NewMongoStore wires the Mongo repositories onto one database handle.
func NewMongoStore(db *mongo.Database) Store {
	return Store{
		Accounts: NewMongoAccountRepo(db),
		Bookings: NewMongoBookingRepo(db),
		Catalog:  NewMongoCatalogRepo(db),
		Close: func(ctx context.Context) error {
			return db.Client().Disconnect(ctx)
		},
	}
}
