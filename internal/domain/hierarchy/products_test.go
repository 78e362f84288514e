package hierarchy

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/sangkips/tradenet-api/internal/domain/enum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckProducts(t *testing.T) {
	p1, p2, p3 := uuid.New(), uuid.New(), uuid.New()
	n := network{}
	factory := n.add("Фабрика", nil, p1)
	ctx := context.Background()

	one := Product{ID: p1, Name: "Телевизор"}
	two := Product{ID: p2, Name: "Холодильник"}
	three := Product{ID: p3, Name: "Чайник"}

	tests := []struct {
		name     string
		c        Candidate
		wantMsg  string
		wantList []string
	}{
		{
			name: "no supplier skips the check",
			c:    Candidate{Status: enum.LinkStatusFactory, Products: []Product{two, three}},
		},
		{
			name: "no products skips the check",
			c:    Candidate{Status: enum.LinkStatusEntrepreneur, SupplierID: &factory.ID},
		},
		{
			name: "subset",
			c:    Candidate{Status: enum.LinkStatusEntrepreneur, SupplierID: &factory.ID, Products: []Product{one}},
		},
		{
			name:     "one foreign product",
			c:        Candidate{Status: enum.LinkStatusEntrepreneur, SupplierID: &factory.ID, Products: []Product{one, two}},
			wantMsg:  "Продукт Холодильник не принадлежит поставщику Фабрика",
			wantList: []string{"Холодильник"},
		},
		{
			name:     "several foreign products keep request order",
			c:        Candidate{Status: enum.LinkStatusEntrepreneur, SupplierID: &factory.ID, Products: []Product{three, one, two}},
			wantMsg:  "Продукты Чайник, Холодильник не принадлежат поставщику Фабрика",
			wantList: []string{"Чайник", "Холодильник"},
		},
		{
			name:     "duplicates are reported once",
			c:        Candidate{Status: enum.LinkStatusEntrepreneur, SupplierID: &factory.ID, Products: []Product{two, two}},
			wantMsg:  "Продукт Холодильник не принадлежит поставщику Фабрика",
			wantList: []string{"Холодильник"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := CheckProducts(ctx, tt.c, n.lookup)
			require.NoError(t, err)
			if tt.wantMsg == "" {
				assert.True(t, res.OK())
				return
			}
			require.Len(t, res.Violations, 1)
			assert.Equal(t, KindForeignProducts, res.Violations[0].Kind)
			assert.Equal(t, tt.wantMsg, res.Violations[0].Message)
			assert.Equal(t, tt.wantList, res.Violations[0].Products)
		})
	}
}

func TestCheckProducts_UnknownSupplier(t *testing.T) {
	_, err := CheckProducts(context.Background(), Candidate{
		Status:     enum.LinkStatusEntrepreneur,
		SupplierID: ptr(uuid.New()),
		Products:   []Product{{ID: uuid.New(), Name: "x"}},
	}, network{}.lookup)
	assert.ErrorIs(t, err, ErrSupplierNotFound)
}

func TestCheckDependents(t *testing.T) {
	p1, p2, p3 := uuid.New(), uuid.New(), uuid.New()
	one := Product{ID: p1, Name: "one"}
	two := Product{ID: p2, Name: "two"}
	three := Product{ID: p3, Name: "three"}

	c := Candidate{
		Status:   enum.LinkStatusFactory,
		Products: []Product{one},
		Dependents: []Dependent{
			{Name: "shop", Products: []Product{one}},
			{Name: "kiosk", Products: []Product{two}},
			{Name: "market", Products: []Product{two, three}},
		},
	}

	res := CheckDependents(c)
	assert.Equal(t, []string{
		"Продукт two используется звеном kiosk",
		"Продукты two, three используются звеном market",
	}, res.Messages())
	for _, v := range res.Violations {
		assert.Equal(t, KindDependentProducts, v.Kind)
	}

	assert.True(t, CheckDependents(Candidate{Products: []Product{one}}).OK())
}
