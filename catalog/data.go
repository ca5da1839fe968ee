package catalog

import "everbloom/models"

// bundled is the built-in catalog. It seeds the products collection on first
// boot and serves as a fallback when Mongo is unreachable, so the shop never
// renders an empty grid.
var bundled = []models.Product{
	{
		ProductID:      "1",
		Name:           "Large Satin Ribbon Rose Bouquet",
		Price:          1499,
		OldPrice:       1899,
		SalePercentage: 21,
		Image:          "/images/Large Satin Ribbon Rose Bouquet.jpg",
		Image2:         "/images/Large Satin Ribbon Rose Bouquet.jpg",
		Description:    "A stunning large bouquet featuring elegant satin ribbon roses that captures the essence of romance and elegance. The luxurious satin ribbon material creates a sophisticated look that lasts forever. Perfect for anniversaries, Valentine's Day, or any romantic occasion.",
		Details: []string{
			"Contains 24 premium satin ribbon roses",
			"Large size perfect for making a statement",
			"Available in red, pink, or white",
			"Arrangement height: 16 inches",
			"Includes decorative vase",
			"Long-lasting and maintenance-free",
		},
		Categories:      models.Categories{Occasion: "romance"},
		Type:            "bouquet",
		FlowerType:      "satin ribbon",
		Size:            "large",
		RelatedProducts: []string{"2", "3", "7"},
	},
	{
		ProductID:   "2",
		Name:        "Small Pipe Cleaner Celebration Bouquet",
		Price:       1899,
		Image:       "/images/Small Pipe Cleaner Celebration Bouquet.jpg",
		Image2:      "/images/Small Pipe Cleaner Celebration Bouquet.jpg",
		Description: "A vibrant and joyful small bouquet crafted with colorful pipe cleaner flowers. The unique pipe cleaner material creates fun, textured blooms that add a playful touch to your celebration. Perfect for birthdays, graduations, promotions, or any festive occasion.",
		Details: []string{
			"Contains a variety of colorful pipe cleaner flowers",
			"Small size perfect for desks or small spaces",
			"Arrangement height: 10 inches",
			"Includes decorative ribbon",
			"Bendable and posable flowers",
			"Long-lasting and maintenance-free",
		},
		Categories:      models.Categories{Occasion: "celebrations"},
		Type:            "bouquet",
		FlowerType:      "pipe cleaner",
		Size:            "small",
		RelatedProducts: []string{"1", "4", "8"},
	},
	{
		ProductID:   "3",
		Name:        "Fantasy Realm Pipe Cleaner Single Flower",
		Price:       2299,
		Image:       "/images/Fantasy Realm Pipe Cleaner Single Flower.jpg",
		Image2:      "/images/Fantasy Realm Pipe Cleaner Single Flower.jpg",
		Description: "A magical single flower inspired by fantasy realms, crafted with intricate pipe cleaner details. This unique piece features vibrant colors and whimsical design elements that transport you to enchanted worlds. Perfect for fantasy enthusiasts and collectors.",
		Details: []string{
			"Handcrafted fantasy-inspired single flower",
			"Intricate pipe cleaner detailing",
			"Height: 12 inches",
			"Includes decorative stand",
			"Vibrant, magical colors",
			"Long-lasting keepsake",
		},
		Categories:      models.Categories{Fandom: "fantasy"},
		Type:            "single flower",
		FlowerType:      "pipe cleaner",
		RelatedProducts: []string{"5", "8", "6"},
	},
	{
		ProductID:   "4",
		Name:        "Large Satin Ribbon Sympathy Bouquet",
		Price:       1699,
		Image:       "/images/Large Satin Ribbon Sympathy Bouquet.jpg",
		Image2:      "/images/Large Satin Ribbon Sympathy Bouquet.jpg",
		Description: "A tasteful and elegant large bouquet designed to express sympathy and support. Crafted with delicate satin ribbon flowers in soft, comforting colors, this arrangement offers lasting comfort during difficult times. The premium satin ribbon material creates a refined, respectful tribute.",
		Details: []string{
			"Contains white satin ribbon lilies and subtle accent flowers",
			"Large size suitable for services and memorials",
			"Arrangement height: 18 inches",
			"Includes decorative urn-style pot",
			"Elegant satin ribbon craftsmanship",
			"Long-lasting keepsake",
		},
		Categories:      models.Categories{Occasion: "sympathy"},
		Type:            "bouquet",
		FlowerType:      "satin ribbon",
		Size:            "large",
		RelatedProducts: []string{"1", "7", "6"},
	},
	{
		ProductID:   "5",
		Name:        "Small Pipe Cleaner Superhero Bouquet",
		Price:       2499,
		Image:       "/images/Small Pipe Cleaner Superhero Bouquet.jpg",
		Image2:      "/images/Small Pipe Cleaner Superhero Bouquet.jpg",
		Description: "A dynamic and colorful bouquet inspired by popular superhero themes. This arrangement features pipe cleaner flowers in bold, iconic colors that celebrate heroic adventures. Perfect for comic book fans, movie enthusiasts, or anyone who appreciates superhero culture.",
		Details: []string{
			"Features flowers in classic superhero color schemes",
			"Small size perfect for display shelves",
			"Arrangement height: 10 inches",
			"Includes themed decorative elements",
			"Bendable and posable flowers",
			"Long-lasting collectible",
		},
		Categories:      models.Categories{Fandom: "superheroes"},
		Type:            "bouquet",
		FlowerType:      "pipe cleaner",
		Size:            "small",
		RelatedProducts: []string{"3", "6", "8"},
	},
	{
		ProductID:   "6",
		Name:        "Large Satin Ribbon Wedding Bouquet",
		Price:       1999,
		Image:       "/images/Large Satin Ribbon Wedding Bouquet.jpg",
		Image2:      "/images/Large Satin Ribbon Wedding Bouquet.jpg",
		Description: "An exquisite large bouquet designed specifically for weddings and bridal occasions. Crafted with premium satin ribbon flowers in classic white and ivory tones, this elegant arrangement creates a timeless bridal look that will never wilt or fade. Perfect for preserving wedding memories forever.",
		Details: []string{
			"Contains white and ivory satin ribbon roses and lilies",
			"Large size perfect for bridal bouquets",
			"Arrangement height: 14 inches",
			"Includes decorative ribbon wrap and pearl accents",
			"Premium satin ribbon craftsmanship",
			"Everlasting wedding keepsake",
		},
		Categories:      models.Categories{Occasion: "wedding"},
		Type:            "bouquet",
		FlowerType:      "satin ribbon",
		Size:            "large",
		RelatedProducts: []string{"1", "4", "7"},
	},
	{
		ProductID:   "7",
		Name:        "Small Pipe Cleaner Thank You Bouquet",
		Price:       1799,
		Image:       "/images/Small Pipe Cleaner Thank You Bouquet.jpg",
		Image2:      "/images/Small Pipe Cleaner Thank You Bouquet.jpg",
		Description: "A charming small bouquet designed to express gratitude and appreciation. Crafted with colorful pipe cleaner flowers in cheerful hues, this arrangement conveys heartfelt thanks in a lasting, meaningful way. Perfect for teacher appreciation, thank you gifts, or showing gratitude to someone special.",
		Details: []string{
			"Features a variety of cheerful pipe cleaner flowers",
			"Small size perfect for gifting",
			"Arrangement height: 8 inches",
			"Includes \"Thank You\" decorative tag",
			"Bright, uplifting colors",
			"Long-lasting token of appreciation",
		},
		Categories:      models.Categories{Occasion: "thanks"},
		Type:            "bouquet",
		FlowerType:      "pipe cleaner",
		Size:            "small",
		RelatedProducts: []string{"2", "6", "1"},
	},
	{
		ProductID:   "8",
		Name:        "Anime Inspired Pipe Cleaner Single Flower",
		Price:       1899,
		Image:       "/images/Anime Inspired Pipe Cleaner Single Flower.jpg",
		Image2:      "/images/Anime Inspired Pipe Cleaner Single Flower.jpg",
		Description: "A unique single flower inspired by popular anime aesthetics. This intricate pipe cleaner creation captures the vibrant colors and distinctive style of Japanese animation. Perfect for anime enthusiasts, collectors, or as a special gift for fans of the genre.",
		Details: []string{
			"Handcrafted anime-inspired single flower",
			"Intricate pipe cleaner detailing",
			"Height: 10 inches",
			"Includes decorative stand",
			"Vibrant anime-inspired colors",
			"Long-lasting collectible",
		},
		Categories:      models.Categories{Fandom: "anime"},
		Type:            "single flower",
		FlowerType:      "pipe cleaner",
		RelatedProducts: []string{"3", "5", "6"},
	},
	{
		ProductID:   "9",
		Name:        "Single Red Rose",
		Price:       350,
		Image:       "/images/Single Red Rose.jpg",
		Image2:      "/images/Single Red Rose.jpg",
		Description: "A classic single red rose crafted with pipe cleaner for everlasting beauty. This timeless symbol of love and affection will never wilt or fade. Perfect for Valentine's Day, anniversaries, or as a simple expression of love.",
		Details: []string{
			"Handcrafted single red rose",
			"Pipe cleaner construction",
			"Height: 12 inches",
			"Includes decorative stem with leaves",
			"Classic romantic symbol",
			"Long-lasting keepsake",
		},
		Categories:      models.Categories{Occasion: "valentine"},
		Type:            "single flower",
		FlowerType:      "pipe cleaner",
		Size:            "small",
		RelatedProducts: []string{"1", "3", "7"},
	},
	{
		ProductID:   "10",
		Name:        "Sunflower Arrangement",
		Price:       1500,
		Image:       "/images/Sunflower Arrangement.jpg",
		Image2:      "/images/Sunflower Arrangement.jpg",
		Description: "A bright and cheerful arrangement featuring handcrafted satin ribbon sunflowers. This vibrant bouquet brings the warmth and joy of sunflowers into any space, with the added benefit of lasting forever. Perfect for birthdays, housewarmings, or adding a touch of sunshine to any room.",
		Details: []string{
			"Contains multiple satin ribbon sunflowers",
			"Large size for maximum impact",
			"Arrangement height: 16 inches",
			"Includes decorative vase",
			"Premium satin ribbon craftsmanship",
			"Everlasting sunshine for your home",
		},
		Categories:      models.Categories{Occasion: "birthday"},
		Type:            "bouquet",
		FlowerType:      "satin ribbon",
		Size:            "large",
		RelatedProducts: []string{"1", "6", "7"},
	},
	{
		ProductID:   "11",
		Name:        "Classic Rose Bouquet",
		Price:       1200,
		Image:       "/images/Classic Rose Bouquet.jpg",
		Image2:      "/images/Classic Rose Bouquet.jpg",
		Description: "A timeless arrangement of classic roses crafted with pipe cleaners for lasting beauty. This elegant bouquet features the perfect blend of traditional design with modern durability. Perfect for anniversaries, special occasions, or as a meaningful gift that will never fade.",
		Details: []string{
			"Contains 12 handcrafted pipe cleaner roses",
			"Classic design with modern durability",
			"Arrangement height: 14 inches",
			"Includes decorative vase",
			"Available in red, pink, or mixed colors",
			"Everlasting beauty",
		},
		Categories:      models.Categories{Occasion: "anniversary"},
		Type:            "bouquet",
		FlowerType:      "pipe cleaner",
		Size:            "large",
		RelatedProducts: []string{"1", "6", "9"},
	},
	{
		ProductID:   "12",
		Name:        "Sci-Fi Collection",
		Price:       2500,
		Image:       "/images/Sci-Fi Collection.jpg",
		Image2:      "/images/Sci-Fi Collection.jpg",
		Description: "An out-of-this-world arrangement inspired by science fiction themes. This unique bouquet features satin ribbon flowers with cosmic colors and futuristic design elements. Perfect for sci-fi enthusiasts, space lovers, or as a conversation-starting decorative piece.",
		Details: []string{
			"Features space-inspired satin ribbon flowers",
			"Large statement piece",
			"Arrangement height: 18 inches",
			"Includes themed decorative elements",
			"Cosmic color palette",
			"Long-lasting collectible",
		},
		Categories:      models.Categories{Fandom: "sci-fi"},
		Type:            "bouquet",
		FlowerType:      "satin ribbon",
		Size:            "large",
		RelatedProducts: []string{"3", "5", "8"},
	},
	{
		ProductID:   "13",
		Name:        "Anime Inspired Arrangement",
		Price:       1800,
		Image:       "/images/Anime Inspired Arrangement.jpg",
		Image2:      "/images/Anime Inspired Arrangement.jpg",
		Description: "A vibrant bouquet inspired by popular anime aesthetics. This arrangement features pipe cleaner flowers in bright, distinctive colors that capture the energy and style of Japanese animation. Perfect for anime fans, collectors, or as a unique decorative piece.",
		Details: []string{
			"Features anime-inspired pipe cleaner flowers",
			"Small size perfect for display shelves",
			"Arrangement height: 12 inches",
			"Includes themed decorative elements",
			"Vibrant anime color palette",
			"Long-lasting collectible",
		},
		Categories:      models.Categories{Fandom: "anime"},
		Type:            "bouquet",
		FlowerType:      "pipe cleaner",
		Size:            "small",
		RelatedProducts: []string{"8", "5", "3"},
	},
	{
		ProductID:   "14",
		Name:        "Fantasy Realm Arrangement",
		Price:       2299,
		Image:       "/images/Fantasy Realm Arrangement.jpg",
		Image2:      "/images/Fantasy Realm Arrangement.jpg",
		Description: "A magical bouquet inspired by fantasy worlds and enchanted realms. This arrangement features a collection of whimsical flowers crafted with intricate details and mystical elements. Perfect for fantasy enthusiasts, collectors, or as a unique decorative piece.",
		Details: []string{
			"Features fantasy-inspired flowers and elements",
			"Medium size for versatile display",
			"Arrangement height: 14 inches",
			"Includes themed decorative accents",
			"Magical color palette",
			"Long-lasting collectible",
		},
		Categories:      models.Categories{Fandom: "fantasy"},
		Type:            "bouquet",
		FlowerType:      "mixed",
		Size:            "medium",
		RelatedProducts: []string{"3", "5", "12"},
	},
	{
		ProductID:   "15",
		Name:        "Elegant Rose Bouquet",
		Price:       1499,
		Image:       "/images/Elegant Rose Bouquet.jpg",
		Image2:      "/images/Elegant Rose Bouquet.jpg",
		Description: "A sophisticated arrangement of elegant roses crafted with premium materials. This timeless bouquet combines classic beauty with modern durability for a lasting impression. Perfect for special occasions, gifts, or adding a touch of elegance to any space.",
		Details: []string{
			"Contains 18 handcrafted elegant roses",
			"Sophisticated design",
			"Arrangement height: 16 inches",
			"Includes decorative vase",
			"Premium craftsmanship",
			"Everlasting elegance",
		},
		Categories:      models.Categories{Occasion: "romance"},
		Type:            "bouquet",
		FlowerType:      "mixed",
		Size:            "large",
		RelatedProducts: []string{"1", "11", "6"},
	},
	{
		ProductID:   "16",
		Name:        "Celebration Bouquet",
		Price:       1499,
		Image:       "/images/Celebration Bouquet.jpg",
		Image2:      "/images/Celebration Bouquet.jpg",
		Description: "A festive and colorful arrangement designed to celebrate special moments. This vibrant bouquet features a mix of cheerful flowers in bright, uplifting colors. Perfect for birthdays, graduations, promotions, or any joyful occasion worth commemorating.",
		Details: []string{
			"Features a variety of celebratory flowers",
			"Medium size for versatile display",
			"Arrangement height: 14 inches",
			"Includes festive decorative elements",
			"Bright, joyful color palette",
			"Long-lasting memento",
		},
		Categories:      models.Categories{Occasion: "celebrations"},
		Type:            "bouquet",
		FlowerType:      "mixed",
		Size:            "medium",
		RelatedProducts: []string{"2", "7", "10"},
	},
	{
		ProductID:   "17",
		Name:        "Autumn Harvest",
		Price:       1799,
		Image:       "/images/Autumn Harvest.jpg",
		Image2:      "/images/Autumn Harvest.jpg",
		Description: "A warm and inviting arrangement inspired by the colors of fall. This seasonal bouquet features flowers in rich autumn hues of orange, red, and gold. Perfect for fall decorating, Thanksgiving, or adding a cozy touch to any space.",
		Details: []string{
			"Features autumn-inspired flowers",
			"Medium size for versatile display",
			"Arrangement height: 14 inches",
			"Includes seasonal decorative elements",
			"Warm autumn color palette",
			"Long-lasting seasonal decor",
		},
		Categories:      models.Categories{Occasion: "seasonal"},
		Type:            "bouquet",
		FlowerType:      "mixed",
		Size:            "medium",
		RelatedProducts: []string{"10", "4", "7"},
	},
	{
		ProductID:   "18",
		Name:        "Superhero Inspired Bouquet",
		Price:       2499,
		Image:       "/images/Superhero Inspired Bouquet.jpg",
		Image2:      "/images/Superhero Inspired Bouquet.jpg",
		Description: "A bold and dynamic arrangement inspired by iconic superhero themes. This unique bouquet features flowers in classic superhero colors with special themed elements. Perfect for comic book fans, movie enthusiasts, or adding a touch of heroic flair to any space.",
		Details: []string{
			"Features superhero-themed flowers and elements",
			"Medium size for versatile display",
			"Arrangement height: 14 inches",
			"Includes themed decorative accents",
			"Bold superhero color palette",
			"Long-lasting collectible",
		},
		Categories:      models.Categories{Fandom: "superheroes"},
		Type:            "bouquet",
		FlowerType:      "mixed",
		Size:            "medium",
		RelatedProducts: []string{"5", "12", "13"},
	},
	{
		ProductID:   "19",
		Name:        "Cute Critters Arrangement",
		Price:       1899,
		Image:       "/images/Cute Critters Arrangement.jpg",
		Image2:      "/images/Cute Critters Arrangement.jpg",
		Description: "A charming arrangement featuring adorable animal-inspired elements. This whimsical bouquet combines cute critter designs with colorful flowers for a playful, heartwarming display. Perfect for children's rooms, animal lovers, or adding a touch of fun to any space.",
		Details: []string{
			"Features animal-inspired elements and flowers",
			"Small size perfect for children's spaces",
			"Arrangement height: 12 inches",
			"Includes cute critter decorative accents",
			"Playful, cheerful color palette",
			"Long-lasting keepsake",
		},
		Categories:      models.Categories{Fandom: "animals"},
		Type:            "bouquet",
		FlowerType:      "mixed",
		Size:            "small",
		RelatedProducts: []string{"8", "13", "5"},
	},
	{
		ProductID:   "20",
		Name:        "Gaming Inspired Collection",
		Price:       2399,
		Image:       "/images/Fantasy Realm Bouquet.jpg",
		Image2:      "/images/Fantasy Realm Bouquet.jpg",
		Description: "A unique arrangement inspired by video game aesthetics and themes. This creative bouquet features pixel-style flowers and gaming-inspired elements for a truly distinctive display. Perfect for gamers, streamers, or adding a touch of digital creativity to any space.",
		Details: []string{
			"Features gaming-inspired flowers and elements",
			"Medium size for versatile display",
			"Arrangement height: 14 inches",
			"Includes themed decorative accents",
			"Vibrant gaming-inspired color palette",
			"Long-lasting collectible",
		},
		Categories:      models.Categories{Fandom: "gaming"},
		Type:            "bouquet",
		FlowerType:      "mixed",
		Size:            "medium",
		RelatedProducts: []string{"5", "12", "13"},
	},
	{
		ProductID:      "21",
		Name:           "Sunflower Bouquet",
		Price:          329,
		OldPrice:       459,
		SalePercentage: 28,
		Image:          "/images/Sunflower Arrangement.jpg",
		Image2:         "/images/Sunflower Arrangement.jpg",
		Description:    "This Sunflower Bouquet is handcrafted with high quality yarn, featuring 1 sunflower with 2 green leaves and a white ribbon bow. Its premium bouquet packing ensures a beautiful display while the net quantity of 1 bouquet measures 12 inches. Made in India.",
		Details: []string{
			"Contains 1 handcrafted sunflower",
			"Features 2 green leaves and white ribbon bow",
			"Arrangement height: 12 inches",
			"Premium bouquet packing",
			"Handcrafted with high quality yarn",
			"Made in India",
		},
		Categories:      models.Categories{Occasion: "birthday"},
		Type:            "bouquet",
		FlowerType:      "satin ribbon",
		Size:            "small",
		RelatedProducts: []string{"10", "16", "17"},
	},
}

// Bundled returns a copy of the built-in catalog.
func Bundled() []models.Product {
	out := make([]models.Product, len(bundled))
	copy(out, bundled)
	return out
}

// BundledByID looks a product up in the built-in catalog.
func BundledByID(id string) (models.Product, bool) {
	for _, p := range bundled {
		if p.ProductID == id {
			return p, true
		}
	}
	return models.Product{}, false
}
