package catalog

import (
	"goflare.io/storefront/models"
)

func intPtr(v int) *int { return &v }

// SampleProducts is the seed catalog used when no database is configured.
func SampleProducts() []models.Product {
	return []models.Product{
		{
			ID:              "1",
			Name:            "Galaxy S23 Ultra",
			Description:     "The epic smartphone with a 200MP camera.",
			LongDescription: "Experience innovation with the Galaxy S23 Ultra. A groundbreaking 200MP camera, built-in S Pen, and the fastest processor in a Galaxy, wrapped in a refined sustainable design.",
			Price:           1199.99,
			Image:           "https://images.samsung.com/is/image/samsung/p6pim/latin/2302/gallery/latin-galaxy-s23-ultra-s918-447305-sm-s918bzglgto-thumb-535247702",
			Images: []string{
				"https://images.samsung.com/is/image/samsung/p6pim/latin/2302/gallery/latin-galaxy-s23-ultra-s918-447305-sm-s918bzglgto-535247702",
				"https://images.samsung.com/is/image/samsung/p6pim/latin/feature/164016803/latin-feature-galaxy-s23-ultra-535236385",
			},
			Category:   "Smartphones",
			Brand:      "Samsung",
			Stock:      intPtr(50),
			Rating:     4.8,
			NumReviews: 125,
			Specs: []models.Spec{
				{Name: "Display", Value: `6.8" Dynamic AMOLED 2X, QHD+, 120Hz`},
				{Name: "Main Camera", Value: "200MP Wide, 12MP UltraWide, 10MP Telephoto (3x), 10MP Telephoto (10x)"},
				{Name: "Processor", Value: "Snapdragon 8 Gen 2 for Galaxy"},
				{Name: "Battery", Value: "5000mAh, 45W fast charging"},
				{Name: "S Pen", Value: "Built in"},
			},
			Features: []string{"200MP camera", "Built-in S Pen", "Advanced Nightography", "Extreme gaming performance"},
		},
		{
			ID:              "2",
			Name:            "Galaxy Tab S9 Ultra",
			Description:     "Your window to a world of possibilities.",
			LongDescription: "The Galaxy Tab S9 Ultra redefines what a tablet can do. A stunning 14.6-inch Dynamic AMOLED 2X display and the Snapdragon 8 Gen 2 for Galaxy make it perfect for productivity and entertainment. S Pen included, rated for water and dust.",
			Price:           1099.99,
			Image:           "https://images.samsung.com/is/image/samsung/p6pim/latin/2307/gallery/latin-galaxy-tab-s9-ultra-wifi-x910-sm-x910nzaelto-thumb-537299066",
			Images: []string{
				"https://images.samsung.com/is/image/samsung/p6pim/latin/2307/gallery/latin-galaxy-tab-s9-ultra-wifi-x910-sm-x910nzaelto-537299066",
			},
			Category:   "Tablets",
			Brand:      "Samsung",
			Stock:      intPtr(30),
			Rating:     4.7,
			NumReviews: 90,
			Specs: []models.Spec{
				{Name: "Display", Value: `14.6" Dynamic AMOLED 2X, 120Hz`},
				{Name: "Processor", Value: "Snapdragon 8 Gen 2 for Galaxy"},
				{Name: "Battery", Value: "11200mAh"},
				{Name: "Durability", Value: "IP68 (water and dust)"},
			},
			Features: []string{`Immersive 14.6" display`, "Superior performance", "Water and dust resistant", "S Pen included"},
		},
		{
			ID:              "3",
			Name:            "Galaxy Watch6 Classic",
			Description:     "Timeless style, smart features.",
			LongDescription: "The Galaxy Watch6 Classic pairs a sophisticated rotating-bezel design with advanced health and wellness tracking. Customize faces and bands for a look of your own.",
			Price:           429.99,
			Image:           "https://images.samsung.com/is/image/samsung/p6pim/latin/2307/gallery/latin-galaxy-watch6-classic-r960-sm-r960nzkalto-thumb-537305759",
			Category:        "Wearables",
			Brand:           "Samsung",
			Stock:           intPtr(75),
			Rating:          4.6,
			NumReviews:      150,
			Specs: []models.Spec{
				{Name: "Display", Value: `1.5" Super AMOLED (47mm) / 1.3" (43mm)`},
				{Name: "Material", Value: "Stainless steel"},
				{Name: "Sensors", Value: "BioActive (ECG, blood pressure, BIA), temperature"},
				{Name: "Battery", Value: "Up to 40 hours"},
			},
			Features: []string{"Interactive rotating bezel", "Advanced sleep coaching", "ECG heart monitoring", "Body composition (BIA)"},
		},
		{
			ID:              "4",
			Name:            `Neo QLED 8K QN900C TV (75")`,
			Description:     "Picture that redefines reality.",
			LongDescription: "Immerse yourself in an unprecedented viewing experience with the Neo QLED 8K QN900C. Quantum Matrix Pro technology and the Neural Quantum 8K processor deliver astonishing detail and contrast in an Infinity One design.",
			Price:           6999.99,
			Image:           "https://images.samsung.com/is/image/samsung/p6pim/latin/2302/gallery/latin-qled-qn900c-8k-neo-qled-tv-qn75qn900cgxzd-thumb-535007112",
			Category:        "TVs",
			Brand:           "Samsung",
			Stock:           intPtr(15),
			Rating:          4.9,
			NumReviews:      75,
			Specs: []models.Spec{
				{Name: "Resolution", Value: "Real 8K (7,680 x 4,320)"},
				{Name: "Panel", Value: "Neo QLED (Mini LED)"},
				{Name: "Processor", Value: "Neural Quantum 8K with AI"},
				{Name: "Sound", Value: "Object Tracking Sound Pro, Dolby Atmos"},
			},
			Features: []string{"Real 8K resolution", "Quantum Matrix Pro", "Neural Quantum 8K processor", "OTS Pro surround sound"},
		},
		{
			ID:              "5",
			Name:            "Galaxy Buds3 Pro",
			Description:     "Immersive Hi-Fi sound and intelligent noise canceling.",
			LongDescription: "The Galaxy Buds3 Pro deliver superior audio with 24-bit Hi-Fi sound and 360 audio. Intelligent active noise canceling adapts to your surroundings, and the ergonomic fit stays comfortable all day.",
			Price:           229.99,
			Image:           "https://images.samsung.com/is/image/samsung/p6pim/latin/2208/gallery/latin-galaxy-buds2-pro-r510-sm-r510nlvalto-thumb-533189308",
			Category:        "Audio",
			Brand:           "Samsung",
			Stock:           intPtr(100),
			Rating:          4.7,
			NumReviews:      210,
			Specs: []models.Spec{
				{Name: "Sound", Value: "24-bit Hi-Fi"},
				{Name: "Noise Canceling", Value: "Intelligent ANC with ambient mode"},
				{Name: "Battery", Value: "Up to 5h (buds, ANC on), up to 18h with case"},
				{Name: "Durability", Value: "IPX7 (water)"},
			},
			Features: []string{"24-bit Hi-Fi sound", "Intelligent active noise canceling", "Immersive 360 audio", "Comfortable secure fit"},
		},
	}
}
