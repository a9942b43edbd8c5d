//go:build unit

package queries_test

import (
	"context"
	"testing"

	"runesse/internal/infra"
	"runesse/internal/pkg/errs"
	"runesse/internal/usecase/queries"
	"runesse/tests/common/builder"
	queriesmock "runesse/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCardQueries_ListActive(t *testing.T) {
	tests := []struct {
		name    string
		rows    []*queries.CardView
		err     error
		wantLen int
		wantErr bool
	}{
		{name: "active cards", rows: []*queries.CardView{builder.NewCardBuilder().BuildView(), builder.NewCardBuilder().BuildView()}, wantLen: 2},
		{name: "no cards", rows: nil, wantLen: 0},
		{name: "store failure", err: infra.WrapRepoErr("list", assert.AnError), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := queriesmock.NewMockCardReadStore(gomock.NewController(t))
			store.EXPECT().ListActive(gomock.Any()).Return(tt.rows, tt.err)

			got, err := queries.NewCardQueries(store).ListActive(context.Background())
			if tt.wantErr {
				assert.True(t, errs.Is(err, errs.ErrStore))
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, got)
			assert.Len(t, got, tt.wantLen)
		})
	}
}
