package models

import (
	"sort"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Retail sources a medicine can be priced at.
const (
	SourceApollo    = "apollo"
	SourceNetmeds   = "netmeds"
	SourcePharmeasy = "pharmeasy"
)

type Medicine struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name           string             `bson:"name" json:"name"`
	Img            string             `bson:"img,omitempty" json:"img,omitempty"`
	ApolloPrice    *float64           `bson:"apolloPrice,omitempty" json:"apolloPrice,omitempty"`
	ApolloLink     string             `bson:"apolloLink,omitempty" json:"apolloLink,omitempty"`
	NetmedsPrice   *float64           `bson:"netmedsPrice,omitempty" json:"netmedsPrice,omitempty"`
	NetmedsLink    string             `bson:"netmedsLink,omitempty" json:"netmedsLink,omitempty"`
	PharmeasyPrice *float64           `bson:"pharmeasyPrice,omitempty" json:"pharmeasyPrice,omitempty"`
	PharmeasyLink  string             `bson:"pharmeasyLink,omitempty" json:"pharmeasyLink,omitempty"`
}

// PriceOffer is one source's price for a medicine.
type PriceOffer struct {
	Source string  `json:"source"`
	Price  float64 `json:"price"`
	Link   string  `json:"link,omitempty"`
}

// Offers returns the priced sources, cheapest first. Sources without a price
// are left out; ties keep the apollo, netmeds, pharmeasy order.
func (m Medicine) Offers() []PriceOffer {
	offers := make([]PriceOffer, 0, 3)
	add := func(source string, price *float64, link string) {
		if price != nil {
			offers = append(offers, PriceOffer{Source: source, Price: *price, Link: link})
		}
	}
	add(SourceApollo, m.ApolloPrice, m.ApolloLink)
	add(SourceNetmeds, m.NetmedsPrice, m.NetmedsLink)
	add(SourcePharmeasy, m.PharmeasyPrice, m.PharmeasyLink)

	sort.SliceStable(offers, func(i, j int) bool { return offers[i].Price < offers[j].Price })
	return offers
}

// MedicineComparison is a search hit with its offers laid out for comparison.
type MedicineComparison struct {
	Medicine
	Offers   []PriceOffer `json:"offers"`
	Cheapest string       `json:"cheapest,omitempty"`
}

func NewMedicineComparison(m Medicine) MedicineComparison {
	offers := m.Offers()
	cmp := MedicineComparison{Medicine: m, Offers: offers}
	if len(offers) > 0 {
		cmp.Cheapest = offers[0].Source
	}
	return cmp
}
