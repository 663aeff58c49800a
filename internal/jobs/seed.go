package jobs

import (
	"context"

	"github.com/harentsoaR/swasth-api/internal/models"
	"go.uber.org/zap"
)

// MedicineSeeder inserts the catalogue when the collection is empty.
type MedicineSeeder interface {
	SeedIfEmpty(ctx context.Context, medicines []models.Medicine) (int, error)
}

func price(v float64) *float64 { return &v }

// DefaultMedicines is the catalogue loaded on first start.
var DefaultMedicines = []models.Medicine{
	{
		Name:           "Paracetamol",
		ApolloPrice:    price(20),
		NetmedsPrice:   price(18),
		PharmeasyPrice: price(19),
		ApolloLink:     "https://www.apollopharmacy.in/otc/paracip-650mg-tablet?doNotTrack=true",
		NetmedsLink:    "https://www.netmeds.com/product/paracip-500mg-tablet-10s-lui1z1-8232799",
		PharmeasyLink:  "https://www.1mg.com/drugs/crocin-advance-500mg-tablet-600468",
	},
	{
		Name:           "Ibuprofen",
		ApolloPrice:    price(30),
		NetmedsPrice:   price(28),
		PharmeasyPrice: price(29),
		ApolloLink:     "https://www.apollopharmacy.in/medicine/brufen-600mg-tablet?doNotTrack=true",
		NetmedsLink:    "https://www.netmeds.com/product/combiflam-tablet-20s-lui7zg-8353314",
		PharmeasyLink:  "https://www.1mg.com/drugs/brufen-400-tablet-1002088",
	},
	{
		Name:           "Amoxicillin",
		ApolloPrice:    price(50),
		NetmedsPrice:   price(48),
		PharmeasyPrice: price(49),
		ApolloLink:     "https://www.apollopharmacy.in/search-medicines?source=/search-medicines",
		NetmedsLink:    "https://www.netmeds.com/product/augmentin-625-duo-tablet-10s-lui7t5-8350103",
		PharmeasyLink:  "https://www.1mg.com/drugs/alkem-amoxicillin-250mg-capsule-275872",
	},
	{
		Name:           "Cetirizine",
		ApolloPrice:    price(15),
		NetmedsPrice:   price(14),
		PharmeasyPrice: price(15),
		ApolloLink:     "https://www.apollopharmacy.in/medicine/okacet-10mg-tablet?doNotTrack=true",
		NetmedsLink:    "https://www.netmeds.com/product/okacet-tablet-10s-lui77q-8339060",
		PharmeasyLink:  "https://www.1mg.com/drugs/cetrizine-tablet-54921",
	},
	{
		Name:           "Azithromycin",
		ApolloPrice:    price(60),
		NetmedsPrice:   price(58),
		PharmeasyPrice: price(59),
		ApolloLink:     "https://www.apollopharmacy.in/medicine/azax-500mg-tablet?doNotTrack=true",
		NetmedsLink:    "https://www.netmeds.com/product/azithral-500mg-tablet-5s-lui4bl-8282180",
		PharmeasyLink:  "https://www.1mg.com/drugs/azithral-500-tablet-325616",
	},
	{
		Name:           "Metformin",
		ApolloPrice:    price(25),
		NetmedsPrice:   price(24),
		PharmeasyPrice: price(23),
		ApolloLink:     "https://www.apollopharmacy.in/medicine/okamet-500mg-tablet?doNotTrack=true",
		NetmedsLink:    "https://www.netmeds.com/product/janumet-50500mg-tablet-15s-lui1v7-8229523",
		PharmeasyLink:  "https://www.1mg.com/drugs/glycomet-500-sr-tablet-117725",
	},
	{
		Name:           "Amlodipine",
		ApolloPrice:    price(22),
		NetmedsPrice:   price(21),
		PharmeasyPrice: price(20),
		ApolloLink:     "https://www.apollopharmacy.in/search-medicines?source=/medicine/okamet-500mg-tablet",
		NetmedsLink:    "https://www.netmeds.com/product/telma-am-40mg-tablet-15s-lui7x4-8352243",
		PharmeasyLink:  "https://www.1mg.com/drugs/amlip-5-tablet-43925",
	},
	{
		Name:           "Atorvastatin",
		ApolloPrice:    price(35),
		NetmedsPrice:   price(34),
		PharmeasyPrice: price(33),
		ApolloLink:     "https://www.apollopharmacy.in/medicine/atrastin-10-tablet-10-s?doNotTrack=true",
		NetmedsLink:    "https://www.netmeds.com/product/ecosprin-av-75mg-capsule-15s-lui2by-8240272",
		PharmeasyLink:  "https://www.1mg.com/drugs/lipvas-10-tablet-74062",
	},
	{
		Name:           "Losartan",
		ApolloPrice:    price(28),
		NetmedsPrice:   price(27),
		PharmeasyPrice: price(26),
		ApolloLink:     "https://www.apollopharmacy.in/medicine/losartas-50mg-tablet?doNotTrack=true",
		NetmedsLink:    "https://www.netmeds.com/product/losar-50mg-tablet-15s-lui3vq-8272212",
		PharmeasyLink:  "https://www.1mg.com/drugs/losar-50-tablet-74731",
	},
	{
		Name:           "Omeprazole",
		ApolloPrice:    price(18),
		NetmedsPrice:   price(17),
		PharmeasyPrice: price(16),
		ApolloLink:     "https://www.apollopharmacy.in/medicine/aquris-omzole-capsule-15-s?doNotTrack=true",
		NetmedsLink:    "https://www.netmeds.com/product/omez-20mg-capsule-20s-lui7z2-8353180",
		PharmeasyLink:  "https://www.1mg.com/drugs/omee-capsule-349946",
	},
	{
		Name:           "Pantoprazole",
		ApolloPrice:    price(19),
		NetmedsPrice:   price(18),
		PharmeasyPrice: price(17),
		ApolloLink:     "https://www.apollopharmacy.in/search-medicines?source=/medicine/aquris-omzole-capsule-15-s",
		NetmedsLink:    "https://www.netmeds.com/product/pan-40mg-tablet-15s-lui278-8237698",
		PharmeasyLink:  "https://www.1mg.com/drugs/pan-40-tablet-325250",
	},
	{
		Name:           "Levothyroxine",
		ApolloPrice:    price(40),
		NetmedsPrice:   price(39),
		PharmeasyPrice: price(38),
		ApolloLink:     "https://www.apollopharmacy.in/search-medicines/Levothyroxine",
		NetmedsLink:    "https://www.netmeds.com/product/euthyrox-25mcg-tablet-100s-lui6yt-8334430",
		PharmeasyLink:  "https://www.1mg.com/drugs/euthyrox-25-tablet-962105",
	},
	{
		Name:           "Salbutamol",
		ApolloPrice:    price(32),
		NetmedsPrice:   price(31),
		PharmeasyPrice: price(30),
		ApolloLink:     "https://www.apollopharmacy.in/medicine/salbutamol-4mg-tablet?doNotTrack=true",
		NetmedsLink:    "https://www.netmeds.com/product/asthalin-inhaler-200md-lui25w-8236682",
		PharmeasyLink:  "https://www.1mg.com/drugs/asthalin-100mcg-inhaler-141944",
	},
	{
		Name:           "Montelukast",
		ApolloPrice:    price(27),
		NetmedsPrice:   price(26),
		PharmeasyPrice: price(25),
		ApolloLink:     "https://www.apollopharmacy.in/medicine/telekast-10mg-tablet?doNotTrack=true",
		NetmedsLink:    "https://www.netmeds.com/product/montina-l-tablet-10s-lufur4-7521582",
		PharmeasyLink:  "https://www.1mg.com/drugs/montu-10mg-tablet-323213",
	},
	{
		Name:           "Doxycycline",
		ApolloPrice:    price(45),
		NetmedsPrice:   price(44),
		PharmeasyPrice: price(43),
		ApolloLink:     "https://www.apollopharmacy.in/medicine/minicycline-100mg-tablet?doNotTrack=true",
		NetmedsLink:    "https://www.netmeds.com/product/doxy-1-l-dr-forte-capsule-10s-lui2x9-8252480",
		PharmeasyLink:  "https://www.1mg.com/drugs/minicycline-capsule-126001",
	},
	{
		Name:           "Ranitidine",
		ApolloPrice:    price(16),
		NetmedsPrice:   price(15),
		PharmeasyPrice: price(14),
		ApolloLink:     "https://www.apollopharmacy.in/medicine/minicycline-100mg-tablet?doNotTrack=true",
		NetmedsLink:    "https://www.netmeds.com/product/rantac-150mg-tablet-30s-lufuds-7523423",
		PharmeasyLink:  "https://www.1mg.com/drugs/retiva-tablet-739658",
	},
	{
		Name:           "Ciprofloxacin",
		ApolloPrice:    price(55),
		NetmedsPrice:   price(54),
		PharmeasyPrice: price(53),
		ApolloLink:     "https://www.apollopharmacy.in/medicine/ciplox-500mg-tablet?doNotTrack=true",
		NetmedsLink:    "https://www.netmeds.com/product/ciplox-500mg-tablet-10s-lufuqf-7523402",
		PharmeasyLink:  "https://www.1mg.com/drugs/ciprodac-500-tablet-56644",
	},
}

// SeedMedicines loads DefaultMedicines unless medicines already exist.
func SeedMedicines(ctx context.Context, seeder MedicineSeeder, logger *zap.Logger) error {
	n, err := seeder.SeedIfEmpty(ctx, DefaultMedicines)
	if err != nil {
		return err
	}
	if n > 0 {
		logger.Info("medicines seeded", zap.Int("count", n))
	} else {
		logger.Debug("medicines already present, skipping seed")
	}
	return nil
}
