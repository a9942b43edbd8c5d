package response

import (
	"time"

	"runesse/internal/pkg/errs"
	"runesse/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type CardResponse struct {
	ID        uuid.UUID `json:"id"`
	Label     string    `json:"label"`
	Issuer    string    `json:"issuer"`
	Brand     string    `json:"brand"`
	Network   string    `json:"network"`
	Country   string    `json:"country"`
	Last4     string    `json:"last4"`
	CreatedAt time.Time `json:"createdAt"`
}

type CardListResponse struct {
	OK    bool            `json:"ok"`
	Cards []*CardResponse `json:"cards"`
}

func FromCardViews(vs []*queries.CardView) ([]*CardResponse, error) {
	res := make([]*CardResponse, len(vs))
	for i, v := range vs {
		var c CardResponse
		if err := copier.Copy(&c, v); err != nil {
			return nil, errs.Wrap(err, "copy card view")
		}
		res[i] = &c
	}
	return res, nil
}
