package seed

import (
	domain "github.com/BruksfildServices01/headz-api/internal/domain/hairstyle"
)

const (
	CategoryMens   = "Men's Cuts"
	CategoryWomens = "Women's Styles"
	CategoryUnisex = "Unisex Options"
)

type categorySeed struct {
	Name        string
	Description string
}

type hairstyleSeed struct {
	Name        string
	Description string
	Gender      domain.Gender
	Length      domain.Length
	ImageURL    string
}

var categories = []categorySeed{
	{CategoryMens, "Professional and stylish haircuts for men"},
	{CategoryWomens, "Beautiful and versatile hairstyles for women"},
	{CategoryUnisex, "Gender-neutral hairstyles for everyone"},
	{"Short Styles", "Low-maintenance short haircuts"},
	{"Medium Length", "Versatile medium-length hairstyles"},
	{"Long Styles", "Elegant long hairstyles with volume"},
}

func photo(id string) string {
	return "https://images.unsplash.com/photo-" + id + "?w=400&h=500&fit=crop&crop=face"
}

var hairstyles = []hairstyleSeed{
	// men
	{"Classic Fade", "A timeless fade haircut that works for any occasion", domain.GenderMale, domain.LengthShort, photo("1507003211169-0a1dd7228f2d")},
	{"Textured Quiff", "Modern textured quiff with volume and style", domain.GenderMale, domain.LengthMedium, photo("1562322140-8baeececf3df")},
	{"Pompadour", "Classic pompadour with height and volume", domain.GenderMale, domain.LengthMedium, photo("1595476108010-b4d1f102b1b1")},
	{"Buzz Cut", "Low maintenance buzz cut for a clean look", domain.GenderMale, domain.LengthShort, photo("1500648767791-00dcc994a43e")},
	{"Side Part", "Professional side part for business settings", domain.GenderMale, domain.LengthMedium, photo("1472099645785-5658abf4ff4e")},
	{"Crew Cut", "Military-inspired crew cut for a sharp appearance", domain.GenderMale, domain.LengthShort, photo("1506794778202-cad84cf45f1d")},
	{"Undercut", "Modern undercut with contrast and style", domain.GenderMale, domain.LengthMedium, photo("1492106087820-71f1a00d2b11")},
	{"Slick Back", "Sophisticated slick back for formal occasions", domain.GenderMale, domain.LengthMedium, photo("1506794778202-cad84cf45f1d")},

	// women
	{"Sleek Bob", "Elegant sleek bob for a sophisticated look", domain.GenderFemale, domain.LengthShort, photo("1492106087820-71f1a00d2b11")},
	{"Beach Waves", "Natural beach waves for a relaxed, summery look", domain.GenderFemale, domain.LengthLong, photo("1494790108755-2616b612b786")},
	{"Pixie Cut", "Bold pixie cut for a confident, modern style", domain.GenderFemale, domain.LengthShort, photo("1508214751196-bcfd4ca60f91")},
	{"Long Layers", "Flattering long layers for volume and movement", domain.GenderFemale, domain.LengthLong, photo("1438761681033-6461ffad8d80")},
	{"Curly Bob", "Playful curly bob for natural texture", domain.GenderFemale, domain.LengthShort, photo("1508214751196-bcfd4ca60f91")},
	{"Straight Long", "Classic straight long hair for timeless beauty", domain.GenderFemale, domain.LengthLong, photo("1494790108755-2616b612b786")},
	{"Messy Bun", "Effortless messy bun for casual elegance", domain.GenderFemale, domain.LengthLong, photo("1508214751196-bcfd4ca60f91")},
	{"Braided Updo", "Intricate braided updo for special occasions", domain.GenderFemale, domain.LengthLong, photo("1494790108755-2616b612b786")},

	// unisex
	{"Short Crop", "Versatile short crop for any gender", domain.GenderUnisex, domain.LengthShort, photo("1507003211169-0a1dd7228f2d")},
	{"Textured Crop", "Modern textured crop with personality", domain.GenderUnisex, domain.LengthShort, photo("1562322140-8baeececf3df")},
	{"Modern Fade", "Contemporary fade suitable for all", domain.GenderUnisex, domain.LengthShort, photo("1595476108010-b4d1f102b1b1")},
	{"Layered Cut", "Flattering layered cut for any face shape", domain.GenderUnisex, domain.LengthMedium, photo("1500648767791-00dcc994a43e")},
}

// categoryFor maps a style to its gender category.
func categoryFor(g domain.Gender) string {
	switch g {
	case domain.GenderMale:
		return CategoryMens
	case domain.GenderFemale:
		return CategoryWomens
	default:
		return CategoryUnisex
	}
}
