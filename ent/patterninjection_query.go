// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/onex-platform/omniintelligence/ent/pattern"
	"github.com/onex-platform/omniintelligence/ent/patterninjection"
	"github.com/onex-platform/omniintelligence/ent/predicate"
)

// PatternInjectionQuery is the builder for querying PatternInjection entities.
type PatternInjectionQuery struct {
	config
	ctx         *QueryContext
	order       []patterninjection.OrderOption
	inters      []Interceptor
	predicates  []predicate.PatternInjection
	withPattern *PatternQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the PatternInjectionQuery builder.
func (_q *PatternInjectionQuery) Where(ps ...predicate.PatternInjection) *PatternInjectionQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *PatternInjectionQuery) Limit(limit int) *PatternInjectionQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *PatternInjectionQuery) Offset(offset int) *PatternInjectionQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *PatternInjectionQuery) Unique(unique bool) *PatternInjectionQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *PatternInjectionQuery) Order(o ...patterninjection.OrderOption) *PatternInjectionQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryPattern chains the current query on the "pattern" edge.
func (_q *PatternInjectionQuery) QueryPattern() *PatternQuery {
	query := (&PatternClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(patterninjection.Table, patterninjection.FieldID, selector),
			sqlgraph.To(pattern.Table, pattern.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, patterninjection.PatternTable, patterninjection.PatternColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first PatternInjection entity from the query.
// Returns a *NotFoundError when no PatternInjection was found.
func (_q *PatternInjectionQuery) First(ctx context.Context) (*PatternInjection, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{patterninjection.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *PatternInjectionQuery) FirstX(ctx context.Context) *PatternInjection {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first PatternInjection ID from the query.
// Returns a *NotFoundError when no PatternInjection ID was found.
func (_q *PatternInjectionQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{patterninjection.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *PatternInjectionQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single PatternInjection entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one PatternInjection entity is found.
// Returns a *NotFoundError when no PatternInjection entities are found.
func (_q *PatternInjectionQuery) Only(ctx context.Context) (*PatternInjection, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{patterninjection.Label}
	default:
		return nil, &NotSingularError{patterninjection.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *PatternInjectionQuery) OnlyX(ctx context.Context) *PatternInjection {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only PatternInjection ID in the query.
// Returns a *NotSingularError when more than one PatternInjection ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *PatternInjectionQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{patterninjection.Label}
	default:
		err = &NotSingularError{patterninjection.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *PatternInjectionQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of PatternInjections.
func (_q *PatternInjectionQuery) All(ctx context.Context) ([]*PatternInjection, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*PatternInjection, *PatternInjectionQuery]()
	return withInterceptors[[]*PatternInjection](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *PatternInjectionQuery) AllX(ctx context.Context) []*PatternInjection {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of PatternInjection IDs.
func (_q *PatternInjectionQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(patterninjection.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *PatternInjectionQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *PatternInjectionQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*PatternInjectionQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *PatternInjectionQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *PatternInjectionQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *PatternInjectionQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the PatternInjectionQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *PatternInjectionQuery) Clone() *PatternInjectionQuery {
	if _q == nil {
		return nil
	}
	return &PatternInjectionQuery{
		config:      _q.config,
		ctx:         _q.ctx.Clone(),
		order:       append([]patterninjection.OrderOption{}, _q.order...),
		inters:      append([]Interceptor{}, _q.inters...),
		predicates:  append([]predicate.PatternInjection{}, _q.predicates...),
		withPattern: _q.withPattern.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithPattern tells the query-builder to eager-load the nodes that are connected to
// the "pattern" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *PatternInjectionQuery) WithPattern(opts ...func(*PatternQuery)) *PatternInjectionQuery {
	query := (&PatternClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withPattern = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		PatternID string `json:"pattern_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.PatternInjection.Query().
//		GroupBy(patterninjection.FieldPatternID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *PatternInjectionQuery) GroupBy(field string, fields ...string) *PatternInjectionGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &PatternInjectionGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = patterninjection.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		PatternID string `json:"pattern_id,omitempty"`
//	}
//
//	client.PatternInjection.Query().
//		Select(patterninjection.FieldPatternID).
//		Scan(ctx, &v)
func (_q *PatternInjectionQuery) Select(fields ...string) *PatternInjectionSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &PatternInjectionSelect{PatternInjectionQuery: _q}
	sbuild.label = patterninjection.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a PatternInjectionSelect configured with the given aggregations.
func (_q *PatternInjectionQuery) Aggregate(fns ...AggregateFunc) *PatternInjectionSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *PatternInjectionQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !patterninjection.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *PatternInjectionQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*PatternInjection, error) {
	var (
		nodes       = []*PatternInjection{}
		_spec       = _q.querySpec()
		loadedTypes = [1]bool{
			_q.withPattern != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*PatternInjection).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &PatternInjection{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withPattern; query != nil {
		if err := _q.loadPattern(ctx, query, nodes, nil,
			func(n *PatternInjection, e *Pattern) { n.Edges.Pattern = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *PatternInjectionQuery) loadPattern(ctx context.Context, query *PatternQuery, nodes []*PatternInjection, init func(*PatternInjection), assign func(*PatternInjection, *Pattern)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*PatternInjection)
	for i := range nodes {
		fk := nodes[i].PatternID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(pattern.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "pattern_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (_q *PatternInjectionQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *PatternInjectionQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(patterninjection.Table, patterninjection.Columns, sqlgraph.NewFieldSpec(patterninjection.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, patterninjection.FieldID)
		for i := range fields {
			if fields[i] != patterninjection.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withPattern != nil {
			_spec.Node.AddColumnOnce(patterninjection.FieldPatternID)
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *PatternInjectionQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(patterninjection.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = patterninjection.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// PatternInjectionGroupBy is the group-by builder for PatternInjection entities.
type PatternInjectionGroupBy struct {
	selector
	build *PatternInjectionQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *PatternInjectionGroupBy) Aggregate(fns ...AggregateFunc) *PatternInjectionGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *PatternInjectionGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*PatternInjectionQuery, *PatternInjectionGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *PatternInjectionGroupBy) sqlScan(ctx context.Context, root *PatternInjectionQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// PatternInjectionSelect is the builder for selecting fields of PatternInjection entities.
type PatternInjectionSelect struct {
	*PatternInjectionQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *PatternInjectionSelect) Aggregate(fns ...AggregateFunc) *PatternInjectionSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *PatternInjectionSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*PatternInjectionQuery, *PatternInjectionSelect](ctx, _s.PatternInjectionQuery, _s, _s.inters, v)
}

func (_s *PatternInjectionSelect) sqlScan(ctx context.Context, root *PatternInjectionQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
