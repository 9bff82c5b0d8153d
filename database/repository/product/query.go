package productRepo

import (
	"net/url"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
)

// ResultsPerPage is the fixed page size for product listings.
const ResultsPerPage = 8

// rangeOps maps query-string range suffixes to Mongo comparison operators.
var rangeOps = map[string]string{
	"gt":  "$gt",
	"gte": "$gte",
	"lt":  "$lt",
	"lte": "$lte",
}

// equalityFields are query parameters matched verbatim against product fields.
var equalityFields = map[string]bool{
	"category": true,
	"userId":   true,
}

// rangeFields are query parameters that accept numeric range filters, e.g.
// price[gte]=100&price[lte]=500.
var rangeFields = map[string]bool{
	"price":   true,
	"ratings": true,
	"stock":   true,
}

// SearchCriteria captures keyword search, field filters and the requested page
// for a product listing.
type SearchCriteria struct {
	Keyword string
	Equals  map[string]string
	Ranges  map[string]bson.M
	Page    int
}

// ParseSearchCriteria layers keyword, filter and pagination parameters from a
// raw query string into SearchCriteria. Unknown parameters are ignored.
func ParseSearchCriteria(values url.Values) SearchCriteria {
	criteria := SearchCriteria{
		Keyword: values.Get("keyword"),
		Equals:  map[string]string{},
		Ranges:  map[string]bson.M{},
		Page:    1,
	}

	if page, err := strconv.Atoi(values.Get("page")); err == nil && page > 0 {
		criteria.Page = page
	}

	for key, vals := range values {
		if len(vals) == 0 || vals[0] == "" {
			continue
		}
		value := vals[0]

		if equalityFields[key] {
			criteria.Equals[key] = value
			continue
		}

		// Range filters arrive as field[op], e.g. price[gte].
		open := strings.IndexByte(key, '[')
		if open < 0 || !strings.HasSuffix(key, "]") {
			continue
		}
		field := key[:open]
		op, ok := rangeOps[key[open+1:len(key)-1]]
		if !ok || !rangeFields[field] {
			continue
		}
		num, err := strconv.ParseFloat(value, 64)
		if err != nil {
			continue
		}
		if criteria.Ranges[field] == nil {
			criteria.Ranges[field] = bson.M{}
		}
		criteria.Ranges[field][op] = num
	}

	return criteria
}

// Filter builds the Mongo filter document for the criteria.
func (c SearchCriteria) Filter() bson.M {
	filter := bson.M{}
	if c.Keyword != "" {
		filter["name"] = bson.M{"$regex": c.Keyword, "$options": "i"}
	}
	for field, value := range c.Equals {
		filter[field] = value
	}
	for field, bounds := range c.Ranges {
		filter[field] = bounds
	}
	return filter
}

// Skip returns the number of documents to skip for the requested page.
func (c SearchCriteria) Skip() int64 {
	page := c.Page
	if page < 1 {
		page = 1
	}
	return int64(ResultsPerPage * (page - 1))
}
