// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/onex-platform/omniintelligence/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/onex-platform/omniintelligence/ent/busmessage"
	"github.com/onex-platform/omniintelligence/ent/busoffset"
	"github.com/onex-platform/omniintelligence/ent/feedbackaggregate"
	"github.com/onex-platform/omniintelligence/ent/fsmstate"
	"github.com/onex-platform/omniintelligence/ent/fsmtransition"
	"github.com/onex-platform/omniintelligence/ent/idempotencyrecord"
	"github.com/onex-platform/omniintelligence/ent/pattern"
	"github.com/onex-platform/omniintelligence/ent/patternaudit"
	"github.com/onex-platform/omniintelligence/ent/patterndisable"
	"github.com/onex-platform/omniintelligence/ent/patterninjection"
	"github.com/onex-platform/omniintelligence/ent/sessionoutcome"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// BusMessage is the client for interacting with the BusMessage builders.
	BusMessage *BusMessageClient
	// BusOffset is the client for interacting with the BusOffset builders.
	BusOffset *BusOffsetClient
	// FSMState is the client for interacting with the FSMState builders.
	FSMState *FSMStateClient
	// FSMTransition is the client for interacting with the FSMTransition builders.
	FSMTransition *FSMTransitionClient
	// FeedbackAggregate is the client for interacting with the FeedbackAggregate builders.
	FeedbackAggregate *FeedbackAggregateClient
	// IdempotencyRecord is the client for interacting with the IdempotencyRecord builders.
	IdempotencyRecord *IdempotencyRecordClient
	// Pattern is the client for interacting with the Pattern builders.
	Pattern *PatternClient
	// PatternAudit is the client for interacting with the PatternAudit builders.
	PatternAudit *PatternAuditClient
	// PatternDisable is the client for interacting with the PatternDisable builders.
	PatternDisable *PatternDisableClient
	// PatternInjection is the client for interacting with the PatternInjection builders.
	PatternInjection *PatternInjectionClient
	// SessionOutcome is the client for interacting with the SessionOutcome builders.
	SessionOutcome *SessionOutcomeClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.BusMessage = NewBusMessageClient(c.config)
	c.BusOffset = NewBusOffsetClient(c.config)
	c.FSMState = NewFSMStateClient(c.config)
	c.FSMTransition = NewFSMTransitionClient(c.config)
	c.FeedbackAggregate = NewFeedbackAggregateClient(c.config)
	c.IdempotencyRecord = NewIdempotencyRecordClient(c.config)
	c.Pattern = NewPatternClient(c.config)
	c.PatternAudit = NewPatternAuditClient(c.config)
	c.PatternDisable = NewPatternDisableClient(c.config)
	c.PatternInjection = NewPatternInjectionClient(c.config)
	c.SessionOutcome = NewSessionOutcomeClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:               ctx,
		config:            cfg,
		BusMessage:        NewBusMessageClient(cfg),
		BusOffset:         NewBusOffsetClient(cfg),
		FSMState:          NewFSMStateClient(cfg),
		FSMTransition:     NewFSMTransitionClient(cfg),
		FeedbackAggregate: NewFeedbackAggregateClient(cfg),
		IdempotencyRecord: NewIdempotencyRecordClient(cfg),
		Pattern:           NewPatternClient(cfg),
		PatternAudit:      NewPatternAuditClient(cfg),
		PatternDisable:    NewPatternDisableClient(cfg),
		PatternInjection:  NewPatternInjectionClient(cfg),
		SessionOutcome:    NewSessionOutcomeClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:               ctx,
		config:            cfg,
		BusMessage:        NewBusMessageClient(cfg),
		BusOffset:         NewBusOffsetClient(cfg),
		FSMState:          NewFSMStateClient(cfg),
		FSMTransition:     NewFSMTransitionClient(cfg),
		FeedbackAggregate: NewFeedbackAggregateClient(cfg),
		IdempotencyRecord: NewIdempotencyRecordClient(cfg),
		Pattern:           NewPatternClient(cfg),
		PatternAudit:      NewPatternAuditClient(cfg),
		PatternDisable:    NewPatternDisableClient(cfg),
		PatternInjection:  NewPatternInjectionClient(cfg),
		SessionOutcome:    NewSessionOutcomeClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		BusMessage.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.BusMessage, c.BusOffset, c.FSMState, c.FSMTransition, c.FeedbackAggregate,
		c.IdempotencyRecord, c.Pattern, c.PatternAudit, c.PatternDisable,
		c.PatternInjection, c.SessionOutcome,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.BusMessage, c.BusOffset, c.FSMState, c.FSMTransition, c.FeedbackAggregate,
		c.IdempotencyRecord, c.Pattern, c.PatternAudit, c.PatternDisable,
		c.PatternInjection, c.SessionOutcome,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *BusMessageMutation:
		return c.BusMessage.mutate(ctx, m)
	case *BusOffsetMutation:
		return c.BusOffset.mutate(ctx, m)
	case *FSMStateMutation:
		return c.FSMState.mutate(ctx, m)
	case *FSMTransitionMutation:
		return c.FSMTransition.mutate(ctx, m)
	case *FeedbackAggregateMutation:
		return c.FeedbackAggregate.mutate(ctx, m)
	case *IdempotencyRecordMutation:
		return c.IdempotencyRecord.mutate(ctx, m)
	case *PatternMutation:
		return c.Pattern.mutate(ctx, m)
	case *PatternAuditMutation:
		return c.PatternAudit.mutate(ctx, m)
	case *PatternDisableMutation:
		return c.PatternDisable.mutate(ctx, m)
	case *PatternInjectionMutation:
		return c.PatternInjection.mutate(ctx, m)
	case *SessionOutcomeMutation:
		return c.SessionOutcome.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// BusMessageClient is a client for the BusMessage schema.
type BusMessageClient struct {
	config
}

// NewBusMessageClient returns a client for the BusMessage from the given config.
func NewBusMessageClient(c config) *BusMessageClient {
	return &BusMessageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `busmessage.Hooks(f(g(h())))`.
func (c *BusMessageClient) Use(hooks ...Hook) {
	c.hooks.BusMessage = append(c.hooks.BusMessage, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `busmessage.Intercept(f(g(h())))`.
func (c *BusMessageClient) Intercept(interceptors ...Interceptor) {
	c.inters.BusMessage = append(c.inters.BusMessage, interceptors...)
}

// Create returns a builder for creating a BusMessage entity.
func (c *BusMessageClient) Create() *BusMessageCreate {
	mutation := newBusMessageMutation(c.config, OpCreate)
	return &BusMessageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of BusMessage entities.
func (c *BusMessageClient) CreateBulk(builders ...*BusMessageCreate) *BusMessageCreateBulk {
	return &BusMessageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BusMessageClient) MapCreateBulk(slice any, setFunc func(*BusMessageCreate, int)) *BusMessageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BusMessageCreateBulk{err: fmt.Errorf("calling to BusMessageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BusMessageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BusMessageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for BusMessage.
func (c *BusMessageClient) Update() *BusMessageUpdate {
	mutation := newBusMessageMutation(c.config, OpUpdate)
	return &BusMessageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BusMessageClient) UpdateOne(_m *BusMessage) *BusMessageUpdateOne {
	mutation := newBusMessageMutation(c.config, OpUpdateOne, withBusMessage(_m))
	return &BusMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BusMessageClient) UpdateOneID(id int) *BusMessageUpdateOne {
	mutation := newBusMessageMutation(c.config, OpUpdateOne, withBusMessageID(id))
	return &BusMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for BusMessage.
func (c *BusMessageClient) Delete() *BusMessageDelete {
	mutation := newBusMessageMutation(c.config, OpDelete)
	return &BusMessageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BusMessageClient) DeleteOne(_m *BusMessage) *BusMessageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BusMessageClient) DeleteOneID(id int) *BusMessageDeleteOne {
	builder := c.Delete().Where(busmessage.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BusMessageDeleteOne{builder}
}

// Query returns a query builder for BusMessage.
func (c *BusMessageClient) Query() *BusMessageQuery {
	return &BusMessageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBusMessage},
		inters: c.Interceptors(),
	}
}

// Get returns a BusMessage entity by its id.
func (c *BusMessageClient) Get(ctx context.Context, id int) (*BusMessage, error) {
	return c.Query().Where(busmessage.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BusMessageClient) GetX(ctx context.Context, id int) *BusMessage {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *BusMessageClient) Hooks() []Hook {
	return c.hooks.BusMessage
}

// Interceptors returns the client interceptors.
func (c *BusMessageClient) Interceptors() []Interceptor {
	return c.inters.BusMessage
}

func (c *BusMessageClient) mutate(ctx context.Context, m *BusMessageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BusMessageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BusMessageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BusMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BusMessageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown BusMessage mutation op: %q", m.Op())
	}
}

// BusOffsetClient is a client for the BusOffset schema.
type BusOffsetClient struct {
	config
}

// NewBusOffsetClient returns a client for the BusOffset from the given config.
func NewBusOffsetClient(c config) *BusOffsetClient {
	return &BusOffsetClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `busoffset.Hooks(f(g(h())))`.
func (c *BusOffsetClient) Use(hooks ...Hook) {
	c.hooks.BusOffset = append(c.hooks.BusOffset, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `busoffset.Intercept(f(g(h())))`.
func (c *BusOffsetClient) Intercept(interceptors ...Interceptor) {
	c.inters.BusOffset = append(c.inters.BusOffset, interceptors...)
}

// Create returns a builder for creating a BusOffset entity.
func (c *BusOffsetClient) Create() *BusOffsetCreate {
	mutation := newBusOffsetMutation(c.config, OpCreate)
	return &BusOffsetCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of BusOffset entities.
func (c *BusOffsetClient) CreateBulk(builders ...*BusOffsetCreate) *BusOffsetCreateBulk {
	return &BusOffsetCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BusOffsetClient) MapCreateBulk(slice any, setFunc func(*BusOffsetCreate, int)) *BusOffsetCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BusOffsetCreateBulk{err: fmt.Errorf("calling to BusOffsetClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BusOffsetCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BusOffsetCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for BusOffset.
func (c *BusOffsetClient) Update() *BusOffsetUpdate {
	mutation := newBusOffsetMutation(c.config, OpUpdate)
	return &BusOffsetUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BusOffsetClient) UpdateOne(_m *BusOffset) *BusOffsetUpdateOne {
	mutation := newBusOffsetMutation(c.config, OpUpdateOne, withBusOffset(_m))
	return &BusOffsetUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BusOffsetClient) UpdateOneID(id int) *BusOffsetUpdateOne {
	mutation := newBusOffsetMutation(c.config, OpUpdateOne, withBusOffsetID(id))
	return &BusOffsetUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for BusOffset.
func (c *BusOffsetClient) Delete() *BusOffsetDelete {
	mutation := newBusOffsetMutation(c.config, OpDelete)
	return &BusOffsetDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BusOffsetClient) DeleteOne(_m *BusOffset) *BusOffsetDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BusOffsetClient) DeleteOneID(id int) *BusOffsetDeleteOne {
	builder := c.Delete().Where(busoffset.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BusOffsetDeleteOne{builder}
}

// Query returns a query builder for BusOffset.
func (c *BusOffsetClient) Query() *BusOffsetQuery {
	return &BusOffsetQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBusOffset},
		inters: c.Interceptors(),
	}
}

// Get returns a BusOffset entity by its id.
func (c *BusOffsetClient) Get(ctx context.Context, id int) (*BusOffset, error) {
	return c.Query().Where(busoffset.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BusOffsetClient) GetX(ctx context.Context, id int) *BusOffset {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *BusOffsetClient) Hooks() []Hook {
	return c.hooks.BusOffset
}

// Interceptors returns the client interceptors.
func (c *BusOffsetClient) Interceptors() []Interceptor {
	return c.inters.BusOffset
}

func (c *BusOffsetClient) mutate(ctx context.Context, m *BusOffsetMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BusOffsetCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BusOffsetUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BusOffsetUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BusOffsetDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown BusOffset mutation op: %q", m.Op())
	}
}

// FSMStateClient is a client for the FSMState schema.
type FSMStateClient struct {
	config
}

// NewFSMStateClient returns a client for the FSMState from the given config.
func NewFSMStateClient(c config) *FSMStateClient {
	return &FSMStateClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `fsmstate.Hooks(f(g(h())))`.
func (c *FSMStateClient) Use(hooks ...Hook) {
	c.hooks.FSMState = append(c.hooks.FSMState, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `fsmstate.Intercept(f(g(h())))`.
func (c *FSMStateClient) Intercept(interceptors ...Interceptor) {
	c.inters.FSMState = append(c.inters.FSMState, interceptors...)
}

// Create returns a builder for creating a FSMState entity.
func (c *FSMStateClient) Create() *FSMStateCreate {
	mutation := newFSMStateMutation(c.config, OpCreate)
	return &FSMStateCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of FSMState entities.
func (c *FSMStateClient) CreateBulk(builders ...*FSMStateCreate) *FSMStateCreateBulk {
	return &FSMStateCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *FSMStateClient) MapCreateBulk(slice any, setFunc func(*FSMStateCreate, int)) *FSMStateCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &FSMStateCreateBulk{err: fmt.Errorf("calling to FSMStateClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*FSMStateCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &FSMStateCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for FSMState.
func (c *FSMStateClient) Update() *FSMStateUpdate {
	mutation := newFSMStateMutation(c.config, OpUpdate)
	return &FSMStateUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *FSMStateClient) UpdateOne(_m *FSMState) *FSMStateUpdateOne {
	mutation := newFSMStateMutation(c.config, OpUpdateOne, withFSMState(_m))
	return &FSMStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *FSMStateClient) UpdateOneID(id int) *FSMStateUpdateOne {
	mutation := newFSMStateMutation(c.config, OpUpdateOne, withFSMStateID(id))
	return &FSMStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for FSMState.
func (c *FSMStateClient) Delete() *FSMStateDelete {
	mutation := newFSMStateMutation(c.config, OpDelete)
	return &FSMStateDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *FSMStateClient) DeleteOne(_m *FSMState) *FSMStateDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *FSMStateClient) DeleteOneID(id int) *FSMStateDeleteOne {
	builder := c.Delete().Where(fsmstate.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &FSMStateDeleteOne{builder}
}

// Query returns a query builder for FSMState.
func (c *FSMStateClient) Query() *FSMStateQuery {
	return &FSMStateQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeFSMState},
		inters: c.Interceptors(),
	}
}

// Get returns a FSMState entity by its id.
func (c *FSMStateClient) Get(ctx context.Context, id int) (*FSMState, error) {
	return c.Query().Where(fsmstate.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *FSMStateClient) GetX(ctx context.Context, id int) *FSMState {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *FSMStateClient) Hooks() []Hook {
	return c.hooks.FSMState
}

// Interceptors returns the client interceptors.
func (c *FSMStateClient) Interceptors() []Interceptor {
	return c.inters.FSMState
}

func (c *FSMStateClient) mutate(ctx context.Context, m *FSMStateMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&FSMStateCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&FSMStateUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&FSMStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&FSMStateDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown FSMState mutation op: %q", m.Op())
	}
}

// FSMTransitionClient is a client for the FSMTransition schema.
type FSMTransitionClient struct {
	config
}

// NewFSMTransitionClient returns a client for the FSMTransition from the given config.
func NewFSMTransitionClient(c config) *FSMTransitionClient {
	return &FSMTransitionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `fsmtransition.Hooks(f(g(h())))`.
func (c *FSMTransitionClient) Use(hooks ...Hook) {
	c.hooks.FSMTransition = append(c.hooks.FSMTransition, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `fsmtransition.Intercept(f(g(h())))`.
func (c *FSMTransitionClient) Intercept(interceptors ...Interceptor) {
	c.inters.FSMTransition = append(c.inters.FSMTransition, interceptors...)
}

// Create returns a builder for creating a FSMTransition entity.
func (c *FSMTransitionClient) Create() *FSMTransitionCreate {
	mutation := newFSMTransitionMutation(c.config, OpCreate)
	return &FSMTransitionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of FSMTransition entities.
func (c *FSMTransitionClient) CreateBulk(builders ...*FSMTransitionCreate) *FSMTransitionCreateBulk {
	return &FSMTransitionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *FSMTransitionClient) MapCreateBulk(slice any, setFunc func(*FSMTransitionCreate, int)) *FSMTransitionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &FSMTransitionCreateBulk{err: fmt.Errorf("calling to FSMTransitionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*FSMTransitionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &FSMTransitionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for FSMTransition.
func (c *FSMTransitionClient) Update() *FSMTransitionUpdate {
	mutation := newFSMTransitionMutation(c.config, OpUpdate)
	return &FSMTransitionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *FSMTransitionClient) UpdateOne(_m *FSMTransition) *FSMTransitionUpdateOne {
	mutation := newFSMTransitionMutation(c.config, OpUpdateOne, withFSMTransition(_m))
	return &FSMTransitionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *FSMTransitionClient) UpdateOneID(id int) *FSMTransitionUpdateOne {
	mutation := newFSMTransitionMutation(c.config, OpUpdateOne, withFSMTransitionID(id))
	return &FSMTransitionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for FSMTransition.
func (c *FSMTransitionClient) Delete() *FSMTransitionDelete {
	mutation := newFSMTransitionMutation(c.config, OpDelete)
	return &FSMTransitionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *FSMTransitionClient) DeleteOne(_m *FSMTransition) *FSMTransitionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *FSMTransitionClient) DeleteOneID(id int) *FSMTransitionDeleteOne {
	builder := c.Delete().Where(fsmtransition.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &FSMTransitionDeleteOne{builder}
}

// Query returns a query builder for FSMTransition.
func (c *FSMTransitionClient) Query() *FSMTransitionQuery {
	return &FSMTransitionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeFSMTransition},
		inters: c.Interceptors(),
	}
}

// Get returns a FSMTransition entity by its id.
func (c *FSMTransitionClient) Get(ctx context.Context, id int) (*FSMTransition, error) {
	return c.Query().Where(fsmtransition.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *FSMTransitionClient) GetX(ctx context.Context, id int) *FSMTransition {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *FSMTransitionClient) Hooks() []Hook {
	return c.hooks.FSMTransition
}

// Interceptors returns the client interceptors.
func (c *FSMTransitionClient) Interceptors() []Interceptor {
	return c.inters.FSMTransition
}

func (c *FSMTransitionClient) mutate(ctx context.Context, m *FSMTransitionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&FSMTransitionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&FSMTransitionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&FSMTransitionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&FSMTransitionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown FSMTransition mutation op: %q", m.Op())
	}
}

// FeedbackAggregateClient is a client for the FeedbackAggregate schema.
type FeedbackAggregateClient struct {
	config
}

// NewFeedbackAggregateClient returns a client for the FeedbackAggregate from the given config.
func NewFeedbackAggregateClient(c config) *FeedbackAggregateClient {
	return &FeedbackAggregateClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `feedbackaggregate.Hooks(f(g(h())))`.
func (c *FeedbackAggregateClient) Use(hooks ...Hook) {
	c.hooks.FeedbackAggregate = append(c.hooks.FeedbackAggregate, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `feedbackaggregate.Intercept(f(g(h())))`.
func (c *FeedbackAggregateClient) Intercept(interceptors ...Interceptor) {
	c.inters.FeedbackAggregate = append(c.inters.FeedbackAggregate, interceptors...)
}

// Create returns a builder for creating a FeedbackAggregate entity.
func (c *FeedbackAggregateClient) Create() *FeedbackAggregateCreate {
	mutation := newFeedbackAggregateMutation(c.config, OpCreate)
	return &FeedbackAggregateCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of FeedbackAggregate entities.
func (c *FeedbackAggregateClient) CreateBulk(builders ...*FeedbackAggregateCreate) *FeedbackAggregateCreateBulk {
	return &FeedbackAggregateCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *FeedbackAggregateClient) MapCreateBulk(slice any, setFunc func(*FeedbackAggregateCreate, int)) *FeedbackAggregateCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &FeedbackAggregateCreateBulk{err: fmt.Errorf("calling to FeedbackAggregateClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*FeedbackAggregateCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &FeedbackAggregateCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for FeedbackAggregate.
func (c *FeedbackAggregateClient) Update() *FeedbackAggregateUpdate {
	mutation := newFeedbackAggregateMutation(c.config, OpUpdate)
	return &FeedbackAggregateUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *FeedbackAggregateClient) UpdateOne(_m *FeedbackAggregate) *FeedbackAggregateUpdateOne {
	mutation := newFeedbackAggregateMutation(c.config, OpUpdateOne, withFeedbackAggregate(_m))
	return &FeedbackAggregateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *FeedbackAggregateClient) UpdateOneID(id int) *FeedbackAggregateUpdateOne {
	mutation := newFeedbackAggregateMutation(c.config, OpUpdateOne, withFeedbackAggregateID(id))
	return &FeedbackAggregateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for FeedbackAggregate.
func (c *FeedbackAggregateClient) Delete() *FeedbackAggregateDelete {
	mutation := newFeedbackAggregateMutation(c.config, OpDelete)
	return &FeedbackAggregateDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *FeedbackAggregateClient) DeleteOne(_m *FeedbackAggregate) *FeedbackAggregateDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *FeedbackAggregateClient) DeleteOneID(id int) *FeedbackAggregateDeleteOne {
	builder := c.Delete().Where(feedbackaggregate.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &FeedbackAggregateDeleteOne{builder}
}

// Query returns a query builder for FeedbackAggregate.
func (c *FeedbackAggregateClient) Query() *FeedbackAggregateQuery {
	return &FeedbackAggregateQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeFeedbackAggregate},
		inters: c.Interceptors(),
	}
}

// Get returns a FeedbackAggregate entity by its id.
func (c *FeedbackAggregateClient) Get(ctx context.Context, id int) (*FeedbackAggregate, error) {
	return c.Query().Where(feedbackaggregate.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *FeedbackAggregateClient) GetX(ctx context.Context, id int) *FeedbackAggregate {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryPattern queries the pattern edge of a FeedbackAggregate.
func (c *FeedbackAggregateClient) QueryPattern(_m *FeedbackAggregate) *PatternQuery {
	query := (&PatternClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(feedbackaggregate.Table, feedbackaggregate.FieldID, id),
			sqlgraph.To(pattern.Table, pattern.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, feedbackaggregate.PatternTable, feedbackaggregate.PatternColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *FeedbackAggregateClient) Hooks() []Hook {
	return c.hooks.FeedbackAggregate
}

// Interceptors returns the client interceptors.
func (c *FeedbackAggregateClient) Interceptors() []Interceptor {
	return c.inters.FeedbackAggregate
}

func (c *FeedbackAggregateClient) mutate(ctx context.Context, m *FeedbackAggregateMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&FeedbackAggregateCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&FeedbackAggregateUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&FeedbackAggregateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&FeedbackAggregateDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown FeedbackAggregate mutation op: %q", m.Op())
	}
}

// IdempotencyRecordClient is a client for the IdempotencyRecord schema.
type IdempotencyRecordClient struct {
	config
}

// NewIdempotencyRecordClient returns a client for the IdempotencyRecord from the given config.
func NewIdempotencyRecordClient(c config) *IdempotencyRecordClient {
	return &IdempotencyRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `idempotencyrecord.Hooks(f(g(h())))`.
func (c *IdempotencyRecordClient) Use(hooks ...Hook) {
	c.hooks.IdempotencyRecord = append(c.hooks.IdempotencyRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `idempotencyrecord.Intercept(f(g(h())))`.
func (c *IdempotencyRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.IdempotencyRecord = append(c.inters.IdempotencyRecord, interceptors...)
}

// Create returns a builder for creating a IdempotencyRecord entity.
func (c *IdempotencyRecordClient) Create() *IdempotencyRecordCreate {
	mutation := newIdempotencyRecordMutation(c.config, OpCreate)
	return &IdempotencyRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of IdempotencyRecord entities.
func (c *IdempotencyRecordClient) CreateBulk(builders ...*IdempotencyRecordCreate) *IdempotencyRecordCreateBulk {
	return &IdempotencyRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *IdempotencyRecordClient) MapCreateBulk(slice any, setFunc func(*IdempotencyRecordCreate, int)) *IdempotencyRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &IdempotencyRecordCreateBulk{err: fmt.Errorf("calling to IdempotencyRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*IdempotencyRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &IdempotencyRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for IdempotencyRecord.
func (c *IdempotencyRecordClient) Update() *IdempotencyRecordUpdate {
	mutation := newIdempotencyRecordMutation(c.config, OpUpdate)
	return &IdempotencyRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *IdempotencyRecordClient) UpdateOne(_m *IdempotencyRecord) *IdempotencyRecordUpdateOne {
	mutation := newIdempotencyRecordMutation(c.config, OpUpdateOne, withIdempotencyRecord(_m))
	return &IdempotencyRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *IdempotencyRecordClient) UpdateOneID(id int) *IdempotencyRecordUpdateOne {
	mutation := newIdempotencyRecordMutation(c.config, OpUpdateOne, withIdempotencyRecordID(id))
	return &IdempotencyRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for IdempotencyRecord.
func (c *IdempotencyRecordClient) Delete() *IdempotencyRecordDelete {
	mutation := newIdempotencyRecordMutation(c.config, OpDelete)
	return &IdempotencyRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *IdempotencyRecordClient) DeleteOne(_m *IdempotencyRecord) *IdempotencyRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *IdempotencyRecordClient) DeleteOneID(id int) *IdempotencyRecordDeleteOne {
	builder := c.Delete().Where(idempotencyrecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &IdempotencyRecordDeleteOne{builder}
}

// Query returns a query builder for IdempotencyRecord.
func (c *IdempotencyRecordClient) Query() *IdempotencyRecordQuery {
	return &IdempotencyRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeIdempotencyRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a IdempotencyRecord entity by its id.
func (c *IdempotencyRecordClient) Get(ctx context.Context, id int) (*IdempotencyRecord, error) {
	return c.Query().Where(idempotencyrecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *IdempotencyRecordClient) GetX(ctx context.Context, id int) *IdempotencyRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *IdempotencyRecordClient) Hooks() []Hook {
	return c.hooks.IdempotencyRecord
}

// Interceptors returns the client interceptors.
func (c *IdempotencyRecordClient) Interceptors() []Interceptor {
	return c.inters.IdempotencyRecord
}

func (c *IdempotencyRecordClient) mutate(ctx context.Context, m *IdempotencyRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&IdempotencyRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&IdempotencyRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&IdempotencyRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&IdempotencyRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown IdempotencyRecord mutation op: %q", m.Op())
	}
}

// PatternClient is a client for the Pattern schema.
type PatternClient struct {
	config
}

// NewPatternClient returns a client for the Pattern from the given config.
func NewPatternClient(c config) *PatternClient {
	return &PatternClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `pattern.Hooks(f(g(h())))`.
func (c *PatternClient) Use(hooks ...Hook) {
	c.hooks.Pattern = append(c.hooks.Pattern, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `pattern.Intercept(f(g(h())))`.
func (c *PatternClient) Intercept(interceptors ...Interceptor) {
	c.inters.Pattern = append(c.inters.Pattern, interceptors...)
}

// Create returns a builder for creating a Pattern entity.
func (c *PatternClient) Create() *PatternCreate {
	mutation := newPatternMutation(c.config, OpCreate)
	return &PatternCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Pattern entities.
func (c *PatternClient) CreateBulk(builders ...*PatternCreate) *PatternCreateBulk {
	return &PatternCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PatternClient) MapCreateBulk(slice any, setFunc func(*PatternCreate, int)) *PatternCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PatternCreateBulk{err: fmt.Errorf("calling to PatternClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PatternCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PatternCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Pattern.
func (c *PatternClient) Update() *PatternUpdate {
	mutation := newPatternMutation(c.config, OpUpdate)
	return &PatternUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PatternClient) UpdateOne(_m *Pattern) *PatternUpdateOne {
	mutation := newPatternMutation(c.config, OpUpdateOne, withPattern(_m))
	return &PatternUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PatternClient) UpdateOneID(id string) *PatternUpdateOne {
	mutation := newPatternMutation(c.config, OpUpdateOne, withPatternID(id))
	return &PatternUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Pattern.
func (c *PatternClient) Delete() *PatternDelete {
	mutation := newPatternMutation(c.config, OpDelete)
	return &PatternDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PatternClient) DeleteOne(_m *Pattern) *PatternDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PatternClient) DeleteOneID(id string) *PatternDeleteOne {
	builder := c.Delete().Where(pattern.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PatternDeleteOne{builder}
}

// Query returns a query builder for Pattern.
func (c *PatternClient) Query() *PatternQuery {
	return &PatternQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePattern},
		inters: c.Interceptors(),
	}
}

// Get returns a Pattern entity by its id.
func (c *PatternClient) Get(ctx context.Context, id string) (*Pattern, error) {
	return c.Query().Where(pattern.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PatternClient) GetX(ctx context.Context, id string) *Pattern {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAuditEntries queries the audit_entries edge of a Pattern.
func (c *PatternClient) QueryAuditEntries(_m *Pattern) *PatternAuditQuery {
	query := (&PatternAuditClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(pattern.Table, pattern.FieldID, id),
			sqlgraph.To(patternaudit.Table, patternaudit.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, pattern.AuditEntriesTable, pattern.AuditEntriesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryInjections queries the injections edge of a Pattern.
func (c *PatternClient) QueryInjections(_m *Pattern) *PatternInjectionQuery {
	query := (&PatternInjectionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(pattern.Table, pattern.FieldID, id),
			sqlgraph.To(patterninjection.Table, patterninjection.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, pattern.InjectionsTable, pattern.InjectionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryDisableEvents queries the disable_events edge of a Pattern.
func (c *PatternClient) QueryDisableEvents(_m *Pattern) *PatternDisableQuery {
	query := (&PatternDisableClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(pattern.Table, pattern.FieldID, id),
			sqlgraph.To(patterndisable.Table, patterndisable.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, pattern.DisableEventsTable, pattern.DisableEventsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryOutcomes queries the outcomes edge of a Pattern.
func (c *PatternClient) QueryOutcomes(_m *Pattern) *SessionOutcomeQuery {
	query := (&SessionOutcomeClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(pattern.Table, pattern.FieldID, id),
			sqlgraph.To(sessionoutcome.Table, sessionoutcome.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, pattern.OutcomesTable, pattern.OutcomesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryFeedbackAggregate queries the feedback_aggregate edge of a Pattern.
func (c *PatternClient) QueryFeedbackAggregate(_m *Pattern) *FeedbackAggregateQuery {
	query := (&FeedbackAggregateClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(pattern.Table, pattern.FieldID, id),
			sqlgraph.To(feedbackaggregate.Table, feedbackaggregate.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, pattern.FeedbackAggregateTable, pattern.FeedbackAggregateColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PatternClient) Hooks() []Hook {
	return c.hooks.Pattern
}

// Interceptors returns the client interceptors.
func (c *PatternClient) Interceptors() []Interceptor {
	return c.inters.Pattern
}

func (c *PatternClient) mutate(ctx context.Context, m *PatternMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PatternCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PatternUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PatternUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PatternDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Pattern mutation op: %q", m.Op())
	}
}

// PatternAuditClient is a client for the PatternAudit schema.
type PatternAuditClient struct {
	config
}

// NewPatternAuditClient returns a client for the PatternAudit from the given config.
func NewPatternAuditClient(c config) *PatternAuditClient {
	return &PatternAuditClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `patternaudit.Hooks(f(g(h())))`.
func (c *PatternAuditClient) Use(hooks ...Hook) {
	c.hooks.PatternAudit = append(c.hooks.PatternAudit, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `patternaudit.Intercept(f(g(h())))`.
func (c *PatternAuditClient) Intercept(interceptors ...Interceptor) {
	c.inters.PatternAudit = append(c.inters.PatternAudit, interceptors...)
}

// Create returns a builder for creating a PatternAudit entity.
func (c *PatternAuditClient) Create() *PatternAuditCreate {
	mutation := newPatternAuditMutation(c.config, OpCreate)
	return &PatternAuditCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PatternAudit entities.
func (c *PatternAuditClient) CreateBulk(builders ...*PatternAuditCreate) *PatternAuditCreateBulk {
	return &PatternAuditCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PatternAuditClient) MapCreateBulk(slice any, setFunc func(*PatternAuditCreate, int)) *PatternAuditCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PatternAuditCreateBulk{err: fmt.Errorf("calling to PatternAuditClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PatternAuditCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PatternAuditCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PatternAudit.
func (c *PatternAuditClient) Update() *PatternAuditUpdate {
	mutation := newPatternAuditMutation(c.config, OpUpdate)
	return &PatternAuditUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PatternAuditClient) UpdateOne(_m *PatternAudit) *PatternAuditUpdateOne {
	mutation := newPatternAuditMutation(c.config, OpUpdateOne, withPatternAudit(_m))
	return &PatternAuditUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PatternAuditClient) UpdateOneID(id int) *PatternAuditUpdateOne {
	mutation := newPatternAuditMutation(c.config, OpUpdateOne, withPatternAuditID(id))
	return &PatternAuditUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PatternAudit.
func (c *PatternAuditClient) Delete() *PatternAuditDelete {
	mutation := newPatternAuditMutation(c.config, OpDelete)
	return &PatternAuditDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PatternAuditClient) DeleteOne(_m *PatternAudit) *PatternAuditDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PatternAuditClient) DeleteOneID(id int) *PatternAuditDeleteOne {
	builder := c.Delete().Where(patternaudit.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PatternAuditDeleteOne{builder}
}

// Query returns a query builder for PatternAudit.
func (c *PatternAuditClient) Query() *PatternAuditQuery {
	return &PatternAuditQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePatternAudit},
		inters: c.Interceptors(),
	}
}

// Get returns a PatternAudit entity by its id.
func (c *PatternAuditClient) Get(ctx context.Context, id int) (*PatternAudit, error) {
	return c.Query().Where(patternaudit.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PatternAuditClient) GetX(ctx context.Context, id int) *PatternAudit {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryPattern queries the pattern edge of a PatternAudit.
func (c *PatternAuditClient) QueryPattern(_m *PatternAudit) *PatternQuery {
	query := (&PatternClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(patternaudit.Table, patternaudit.FieldID, id),
			sqlgraph.To(pattern.Table, pattern.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, patternaudit.PatternTable, patternaudit.PatternColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PatternAuditClient) Hooks() []Hook {
	return c.hooks.PatternAudit
}

// Interceptors returns the client interceptors.
func (c *PatternAuditClient) Interceptors() []Interceptor {
	return c.inters.PatternAudit
}

func (c *PatternAuditClient) mutate(ctx context.Context, m *PatternAuditMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PatternAuditCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PatternAuditUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PatternAuditUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PatternAuditDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PatternAudit mutation op: %q", m.Op())
	}
}

// PatternDisableClient is a client for the PatternDisable schema.
type PatternDisableClient struct {
	config
}

// NewPatternDisableClient returns a client for the PatternDisable from the given config.
func NewPatternDisableClient(c config) *PatternDisableClient {
	return &PatternDisableClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `patterndisable.Hooks(f(g(h())))`.
func (c *PatternDisableClient) Use(hooks ...Hook) {
	c.hooks.PatternDisable = append(c.hooks.PatternDisable, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `patterndisable.Intercept(f(g(h())))`.
func (c *PatternDisableClient) Intercept(interceptors ...Interceptor) {
	c.inters.PatternDisable = append(c.inters.PatternDisable, interceptors...)
}

// Create returns a builder for creating a PatternDisable entity.
func (c *PatternDisableClient) Create() *PatternDisableCreate {
	mutation := newPatternDisableMutation(c.config, OpCreate)
	return &PatternDisableCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PatternDisable entities.
func (c *PatternDisableClient) CreateBulk(builders ...*PatternDisableCreate) *PatternDisableCreateBulk {
	return &PatternDisableCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PatternDisableClient) MapCreateBulk(slice any, setFunc func(*PatternDisableCreate, int)) *PatternDisableCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PatternDisableCreateBulk{err: fmt.Errorf("calling to PatternDisableClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PatternDisableCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PatternDisableCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PatternDisable.
func (c *PatternDisableClient) Update() *PatternDisableUpdate {
	mutation := newPatternDisableMutation(c.config, OpUpdate)
	return &PatternDisableUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PatternDisableClient) UpdateOne(_m *PatternDisable) *PatternDisableUpdateOne {
	mutation := newPatternDisableMutation(c.config, OpUpdateOne, withPatternDisable(_m))
	return &PatternDisableUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PatternDisableClient) UpdateOneID(id int) *PatternDisableUpdateOne {
	mutation := newPatternDisableMutation(c.config, OpUpdateOne, withPatternDisableID(id))
	return &PatternDisableUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PatternDisable.
func (c *PatternDisableClient) Delete() *PatternDisableDelete {
	mutation := newPatternDisableMutation(c.config, OpDelete)
	return &PatternDisableDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PatternDisableClient) DeleteOne(_m *PatternDisable) *PatternDisableDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PatternDisableClient) DeleteOneID(id int) *PatternDisableDeleteOne {
	builder := c.Delete().Where(patterndisable.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PatternDisableDeleteOne{builder}
}

// Query returns a query builder for PatternDisable.
func (c *PatternDisableClient) Query() *PatternDisableQuery {
	return &PatternDisableQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePatternDisable},
		inters: c.Interceptors(),
	}
}

// Get returns a PatternDisable entity by its id.
func (c *PatternDisableClient) Get(ctx context.Context, id int) (*PatternDisable, error) {
	return c.Query().Where(patterndisable.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PatternDisableClient) GetX(ctx context.Context, id int) *PatternDisable {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryPattern queries the pattern edge of a PatternDisable.
func (c *PatternDisableClient) QueryPattern(_m *PatternDisable) *PatternQuery {
	query := (&PatternClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(patterndisable.Table, patterndisable.FieldID, id),
			sqlgraph.To(pattern.Table, pattern.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, patterndisable.PatternTable, patterndisable.PatternColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PatternDisableClient) Hooks() []Hook {
	return c.hooks.PatternDisable
}

// Interceptors returns the client interceptors.
func (c *PatternDisableClient) Interceptors() []Interceptor {
	return c.inters.PatternDisable
}

func (c *PatternDisableClient) mutate(ctx context.Context, m *PatternDisableMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PatternDisableCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PatternDisableUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PatternDisableUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PatternDisableDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PatternDisable mutation op: %q", m.Op())
	}
}

// PatternInjectionClient is a client for the PatternInjection schema.
type PatternInjectionClient struct {
	config
}

// NewPatternInjectionClient returns a client for the PatternInjection from the given config.
func NewPatternInjectionClient(c config) *PatternInjectionClient {
	return &PatternInjectionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `patterninjection.Hooks(f(g(h())))`.
func (c *PatternInjectionClient) Use(hooks ...Hook) {
	c.hooks.PatternInjection = append(c.hooks.PatternInjection, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `patterninjection.Intercept(f(g(h())))`.
func (c *PatternInjectionClient) Intercept(interceptors ...Interceptor) {
	c.inters.PatternInjection = append(c.inters.PatternInjection, interceptors...)
}

// Create returns a builder for creating a PatternInjection entity.
func (c *PatternInjectionClient) Create() *PatternInjectionCreate {
	mutation := newPatternInjectionMutation(c.config, OpCreate)
	return &PatternInjectionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PatternInjection entities.
func (c *PatternInjectionClient) CreateBulk(builders ...*PatternInjectionCreate) *PatternInjectionCreateBulk {
	return &PatternInjectionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PatternInjectionClient) MapCreateBulk(slice any, setFunc func(*PatternInjectionCreate, int)) *PatternInjectionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PatternInjectionCreateBulk{err: fmt.Errorf("calling to PatternInjectionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PatternInjectionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PatternInjectionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PatternInjection.
func (c *PatternInjectionClient) Update() *PatternInjectionUpdate {
	mutation := newPatternInjectionMutation(c.config, OpUpdate)
	return &PatternInjectionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PatternInjectionClient) UpdateOne(_m *PatternInjection) *PatternInjectionUpdateOne {
	mutation := newPatternInjectionMutation(c.config, OpUpdateOne, withPatternInjection(_m))
	return &PatternInjectionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PatternInjectionClient) UpdateOneID(id string) *PatternInjectionUpdateOne {
	mutation := newPatternInjectionMutation(c.config, OpUpdateOne, withPatternInjectionID(id))
	return &PatternInjectionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PatternInjection.
func (c *PatternInjectionClient) Delete() *PatternInjectionDelete {
	mutation := newPatternInjectionMutation(c.config, OpDelete)
	return &PatternInjectionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PatternInjectionClient) DeleteOne(_m *PatternInjection) *PatternInjectionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PatternInjectionClient) DeleteOneID(id string) *PatternInjectionDeleteOne {
	builder := c.Delete().Where(patterninjection.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PatternInjectionDeleteOne{builder}
}

// Query returns a query builder for PatternInjection.
func (c *PatternInjectionClient) Query() *PatternInjectionQuery {
	return &PatternInjectionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePatternInjection},
		inters: c.Interceptors(),
	}
}

// Get returns a PatternInjection entity by its id.
func (c *PatternInjectionClient) Get(ctx context.Context, id string) (*PatternInjection, error) {
	return c.Query().Where(patterninjection.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PatternInjectionClient) GetX(ctx context.Context, id string) *PatternInjection {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryPattern queries the pattern edge of a PatternInjection.
func (c *PatternInjectionClient) QueryPattern(_m *PatternInjection) *PatternQuery {
	query := (&PatternClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(patterninjection.Table, patterninjection.FieldID, id),
			sqlgraph.To(pattern.Table, pattern.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, patterninjection.PatternTable, patterninjection.PatternColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PatternInjectionClient) Hooks() []Hook {
	return c.hooks.PatternInjection
}

// Interceptors returns the client interceptors.
func (c *PatternInjectionClient) Interceptors() []Interceptor {
	return c.inters.PatternInjection
}

func (c *PatternInjectionClient) mutate(ctx context.Context, m *PatternInjectionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PatternInjectionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PatternInjectionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PatternInjectionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PatternInjectionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PatternInjection mutation op: %q", m.Op())
	}
}

// SessionOutcomeClient is a client for the SessionOutcome schema.
type SessionOutcomeClient struct {
	config
}

// NewSessionOutcomeClient returns a client for the SessionOutcome from the given config.
func NewSessionOutcomeClient(c config) *SessionOutcomeClient {
	return &SessionOutcomeClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `sessionoutcome.Hooks(f(g(h())))`.
func (c *SessionOutcomeClient) Use(hooks ...Hook) {
	c.hooks.SessionOutcome = append(c.hooks.SessionOutcome, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `sessionoutcome.Intercept(f(g(h())))`.
func (c *SessionOutcomeClient) Intercept(interceptors ...Interceptor) {
	c.inters.SessionOutcome = append(c.inters.SessionOutcome, interceptors...)
}

// Create returns a builder for creating a SessionOutcome entity.
func (c *SessionOutcomeClient) Create() *SessionOutcomeCreate {
	mutation := newSessionOutcomeMutation(c.config, OpCreate)
	return &SessionOutcomeCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SessionOutcome entities.
func (c *SessionOutcomeClient) CreateBulk(builders ...*SessionOutcomeCreate) *SessionOutcomeCreateBulk {
	return &SessionOutcomeCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SessionOutcomeClient) MapCreateBulk(slice any, setFunc func(*SessionOutcomeCreate, int)) *SessionOutcomeCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SessionOutcomeCreateBulk{err: fmt.Errorf("calling to SessionOutcomeClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SessionOutcomeCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SessionOutcomeCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SessionOutcome.
func (c *SessionOutcomeClient) Update() *SessionOutcomeUpdate {
	mutation := newSessionOutcomeMutation(c.config, OpUpdate)
	return &SessionOutcomeUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SessionOutcomeClient) UpdateOne(_m *SessionOutcome) *SessionOutcomeUpdateOne {
	mutation := newSessionOutcomeMutation(c.config, OpUpdateOne, withSessionOutcome(_m))
	return &SessionOutcomeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SessionOutcomeClient) UpdateOneID(id int) *SessionOutcomeUpdateOne {
	mutation := newSessionOutcomeMutation(c.config, OpUpdateOne, withSessionOutcomeID(id))
	return &SessionOutcomeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SessionOutcome.
func (c *SessionOutcomeClient) Delete() *SessionOutcomeDelete {
	mutation := newSessionOutcomeMutation(c.config, OpDelete)
	return &SessionOutcomeDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SessionOutcomeClient) DeleteOne(_m *SessionOutcome) *SessionOutcomeDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SessionOutcomeClient) DeleteOneID(id int) *SessionOutcomeDeleteOne {
	builder := c.Delete().Where(sessionoutcome.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SessionOutcomeDeleteOne{builder}
}

// Query returns a query builder for SessionOutcome.
func (c *SessionOutcomeClient) Query() *SessionOutcomeQuery {
	return &SessionOutcomeQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSessionOutcome},
		inters: c.Interceptors(),
	}
}

// Get returns a SessionOutcome entity by its id.
func (c *SessionOutcomeClient) Get(ctx context.Context, id int) (*SessionOutcome, error) {
	return c.Query().Where(sessionoutcome.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SessionOutcomeClient) GetX(ctx context.Context, id int) *SessionOutcome {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryPattern queries the pattern edge of a SessionOutcome.
func (c *SessionOutcomeClient) QueryPattern(_m *SessionOutcome) *PatternQuery {
	query := (&PatternClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(sessionoutcome.Table, sessionoutcome.FieldID, id),
			sqlgraph.To(pattern.Table, pattern.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, sessionoutcome.PatternTable, sessionoutcome.PatternColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SessionOutcomeClient) Hooks() []Hook {
	return c.hooks.SessionOutcome
}

// Interceptors returns the client interceptors.
func (c *SessionOutcomeClient) Interceptors() []Interceptor {
	return c.inters.SessionOutcome
}

func (c *SessionOutcomeClient) mutate(ctx context.Context, m *SessionOutcomeMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SessionOutcomeCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SessionOutcomeUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SessionOutcomeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SessionOutcomeDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SessionOutcome mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		BusMessage, BusOffset, FSMState, FSMTransition, FeedbackAggregate,
		IdempotencyRecord, Pattern, PatternAudit, PatternDisable, PatternInjection,
		SessionOutcome []ent.Hook
	}
	inters struct {
		BusMessage, BusOffset, FSMState, FSMTransition, FeedbackAggregate,
		IdempotencyRecord, Pattern, PatternAudit, PatternDisable, PatternInjection,
		SessionOutcome []ent.Interceptor
	}
)
