package response

import (
	"service-broker/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

// copyInto maps a read view onto its response shape by field name.
func copyInto[T any](from any) (*T, error) {
	out := new(T)
	if err := copier.Copy(out, from); err != nil {
		return nil, err
	}
	return out, nil
}

func copyAll[T any, V any](views []V) ([]*T, error) {
	out := make([]*T, 0, len(views))
	for _, v := range views {
		item, err := copyInto[T](v)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}

func FromUserView(v *queries.AuthorizedUserView) (*UserResponse, error) {
	return copyInto[UserResponse](v)
}

func FromRequestView(v *queries.RequestView) (*RequestResponse, error) {
	return copyInto[RequestResponse](v)
}

func FromRequestSummaries(vs []*queries.RequestSummaryView) ([]*RequestListItemResponse, error) {
	return copyAll[RequestListItemResponse](vs)
}

func FromAgencyViews(vs []queries.AgencyView) ([]*AgencyResponse, error) {
	return copyAll[AgencyResponse](vs)
}

func FromQuoteView(v *queries.QuoteView) (*QuoteResponse, error) {
	return copyInto[QuoteResponse](v)
}

func FromQuoteViews(vs []*queries.QuoteView) ([]*QuoteResponse, error) {
	return copyAll[QuoteResponse](vs)
}

func FromAgencyQuoteViews(vs []*queries.AgencyQuoteView) ([]*AgencyQuoteResponse, error) {
	return copyAll[AgencyQuoteResponse](vs)
}
