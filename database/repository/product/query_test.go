package productRepo

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestParseSearchCriteria(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		criteria := ParseSearchCriteria(url.Values{})
		assert.Equal(t, "", criteria.Keyword)
		assert.Equal(t, 1, criteria.Page)
		assert.Empty(t, criteria.Equals)
		assert.Empty(t, criteria.Ranges)
	})

	t.Run("KeywordAndPage", func(t *testing.T) {
		values, _ := url.ParseQuery("keyword=maize&page=3")
		criteria := ParseSearchCriteria(values)
		assert.Equal(t, "maize", criteria.Keyword)
		assert.Equal(t, 3, criteria.Page)
	})

	t.Run("InvalidPageFallsBack", func(t *testing.T) {
		values, _ := url.ParseQuery("page=abc")
		assert.Equal(t, 1, ParseSearchCriteria(values).Page)

		values, _ = url.ParseQuery("page=0")
		assert.Equal(t, 1, ParseSearchCriteria(values).Page)
	})

	t.Run("EqualityFilters", func(t *testing.T) {
		values, _ := url.ParseQuery("category=seeds&userId=admin-1")
		criteria := ParseSearchCriteria(values)
		assert.Equal(t, "seeds", criteria.Equals["category"])
		assert.Equal(t, "admin-1", criteria.Equals["userId"])
	})

	t.Run("RangeFilters", func(t *testing.T) {
		values, _ := url.ParseQuery("price[gte]=100&price[lte]=500&ratings[gt]=4")
		criteria := ParseSearchCriteria(values)
		assert.Equal(t, bson.M{"$gte": 100.0, "$lte": 500.0}, criteria.Ranges["price"])
		assert.Equal(t, bson.M{"$gt": 4.0}, criteria.Ranges["ratings"])
	})

	t.Run("UnknownParametersIgnored", func(t *testing.T) {
		values, _ := url.ParseQuery("sort=asc&name[gte]=x&price[between]=5&stock[gte]=oops")
		criteria := ParseSearchCriteria(values)
		assert.Empty(t, criteria.Equals)
		assert.Empty(t, criteria.Ranges)
	})
}

func TestSearchCriteriaFilter(t *testing.T) {
	t.Run("KeywordIsCaseInsensitiveRegex", func(t *testing.T) {
		criteria := SearchCriteria{Keyword: "maize"}
		filter := criteria.Filter()
		assert.Equal(t, bson.M{"$regex": "maize", "$options": "i"}, filter["name"])
	})

	t.Run("LayersAllFilters", func(t *testing.T) {
		criteria := SearchCriteria{
			Keyword: "egg",
			Equals:  map[string]string{"category": "poultry"},
			Ranges:  map[string]bson.M{"price": {"$lte": 50.0}},
		}
		filter := criteria.Filter()
		assert.Len(t, filter, 3)
		assert.Equal(t, "poultry", filter["category"])
		assert.Equal(t, bson.M{"$lte": 50.0}, filter["price"])
	})
}

func TestSearchCriteriaSkip(t *testing.T) {
	assert.Equal(t, int64(0), SearchCriteria{Page: 1}.Skip())
	assert.Equal(t, int64(ResultsPerPage), SearchCriteria{Page: 2}.Skip())
	assert.Equal(t, int64(2*ResultsPerPage), SearchCriteria{Page: 3}.Skip())
	assert.Equal(t, int64(0), SearchCriteria{Page: 0}.Skip())
}
