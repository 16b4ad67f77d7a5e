package account_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/floodrisk/forms-data/go/internal/core/domain/account"
	"github.com/floodrisk/forms-data/go/internal/core/domain/area"
)

func TestQueryValues(t *testing.T) {
	assert.Equal(t, "", account.Query{}.Values().Encode())
	q := account.Query{Status: account.StatusPending, Search: "smith", Page: 2, Limit: 25}
	assert.Equal(t, "limit=25&page=2&search=smith&status=pending", q.Values().Encode())
}

func TestRequestAreaIDs(t *testing.T) {
	r := &account.Request{Areas: []account.AreaSelection{{AreaID: 10, Primary: true}, {AreaID: 11}}}
	assert.Equal(t, []area.ID{10, 11}, r.AreaIDs())
}
