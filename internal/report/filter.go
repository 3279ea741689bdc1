package report

import "cloud.google.com/go/analytics/apiv1beta/analyticsdatapb"

// MatchType selects how a Match leaf compares dimension values.
type MatchType int

const (
	MatchExact MatchType = iota
	MatchPrefix
)

// Filter is a boolean predicate tree over dimension values, lowered to the
// native GA4 FilterExpression when a report is dispatched. Leaf dimension
// names are not validated here; the upstream rejects unknown names at query
// time.
type Filter interface {
	proto() *analyticsdatapb.FilterExpression
}

// Match keeps rows whose dimension equals (or begins with) Value.
type Match struct {
	Dimension string
	Type      MatchType
	Value     string
}

func (m Match) proto() *analyticsdatapb.FilterExpression {
	matchType := analyticsdatapb.Filter_StringFilter_EXACT
	if m.Type == MatchPrefix {
		matchType = analyticsdatapb.Filter_StringFilter_BEGINS_WITH
	}
	return &analyticsdatapb.FilterExpression{
		Expr: &analyticsdatapb.FilterExpression_Filter{
			Filter: &analyticsdatapb.Filter{
				FieldName: m.Dimension,
				OneFilter: &analyticsdatapb.Filter_StringFilter_{
					StringFilter: &analyticsdatapb.Filter_StringFilter{
						MatchType: matchType,
						Value:     m.Value,
					},
				},
			},
		},
	}
}

// And keeps rows satisfying every child filter.
type And []Filter

func (a And) proto() *analyticsdatapb.FilterExpression {
	return &analyticsdatapb.FilterExpression{
		Expr: &analyticsdatapb.FilterExpression_AndGroup{
			AndGroup: &analyticsdatapb.FilterExpressionList{Expressions: protoList(a)},
		},
	}
}

// Or keeps rows satisfying at least one child filter.
type Or []Filter

func (o Or) proto() *analyticsdatapb.FilterExpression {
	return &analyticsdatapb.FilterExpression{
		Expr: &analyticsdatapb.FilterExpression_OrGroup{
			OrGroup: &analyticsdatapb.FilterExpressionList{Expressions: protoList(o)},
		},
	}
}

// Not inverts its child filter.
type Not struct {
	Child Filter
}

func (n Not) proto() *analyticsdatapb.FilterExpression {
	return &analyticsdatapb.FilterExpression{
		Expr: &analyticsdatapb.FilterExpression_NotExpression{
			NotExpression: n.Child.proto(),
		},
	}
}

func protoList(filters []Filter) []*analyticsdatapb.FilterExpression {
	exprs := make([]*analyticsdatapb.FilterExpression, 0, len(filters))
	for _, f := range filters {
		exprs = append(exprs, f.proto())
	}
	return exprs
}

// internalPrefixes are path prefixes of dashboard pages that should not count
// as site traffic.
var internalPrefixes = []string{"/admin", "/login"}

// ExcludeInternalTraffic builds the filter that drops admin and login page
// rows from aggregate totals.
func ExcludeInternalTraffic() Filter {
	or := make(Or, 0, len(internalPrefixes))
	for _, prefix := range internalPrefixes {
		or = append(or, Match{Dimension: "pagePath", Type: MatchPrefix, Value: prefix})
	}
	return Not{Child: or}
}
