package catalog

import (
	"github.com/Kenneson972/ALLINCLUSIVE2.0-sub001/internal/models"
)

// ReleaseSnapshot is the 21-villa catalog reconciled against the current
// price sheet. cmd/seed installs it through the atomic reseed path; the
// audit defaults are derived from it.
func ReleaseSnapshot() []models.Villa {
	return []models.Villa{
		{
			Name:     "Villa F3 sur Petit Macabou",
			Location: "Petit Macabou au Vauclin",
			Category: models.CategorySejour,
			Price:    850,
			PricingDetails: &models.PricingDetails{
				BasePrice: 850,
				Weekend:   850,
				Week:      1550,
				Details:   "850€ le weekend, 1550€ la semaine",
			},
			Guests:        6,
			GuestsDetail:  "6 personnes",
			Gallery:       []string{"/images/villa-f3-petit-macabou/salon.jpg", "/images/villa-f3-petit-macabou/piscine.jpg", "/images/villa-f3-petit-macabou/chambre.jpg"},
			Features:      "Piscine privée, terrasse, climatisation",
			ServicesFull:  "Linge de maison fourni, ménage de fin de séjour",
			Description:   "Villa F3 avec piscine à Petit Macabou, à quelques minutes des plages du Vauclin.",
			CSVIntegrated: true,
		},
		{
			Name:     "Villa F5 sur Ste Anne",
			Location: "Quartier Les Anglais, Sainte-Anne",
			Category: models.CategorySejour,
			Price:    1350,
			PricingDetails: &models.PricingDetails{
				BasePrice:  1350,
				Weekend:    1350,
				Week:       2251,
				HighSeason: 2800,
				Details:    "1350€ le weekend, 2251€ la semaine",
			},
			Guests:        10,
			GuestsDetail:  "10 personnes",
			Gallery:       []string{"/images/villa-f5-ste-anne/vue.jpg", "/images/villa-f5-ste-anne/salon.jpg"},
			Features:      "Piscine, vue mer, 4 chambres climatisées",
			Description:   "Grande villa F5 proche des plages de Sainte-Anne.",
			CSVIntegrated: true,
		},
		{
			Name:     "Villa F3 POUR LA BACCHA",
			Location: "Petit Macabou au Vauclin",
			Category: models.CategorySejour,
			Price:    1350,
			PricingDetails: &models.PricingDetails{
				BasePrice: 1350,
				Weekend:   1350,
				Details:   "1350€ le séjour weekend",
			},
			Guests:        6,
			GuestsDetail:  "6 personnes + 9 invités en journée",
			Gallery:       []string{"/images/villa-f3-baccha/exterieur.jpg"},
			Features:      "Piscine, grande terrasse, proche plage",
			CSVIntegrated: true,
		},
		{
			Name:     "Villa F6 sur Petit Macabou",
			Location: "Petit Macabou au Vauclin",
			Category: models.CategorySejour,
			Price:    2000,
			PricingDetails: &models.PricingDetails{
				BasePrice: 2000,
				Weekend:   2000,
				Week:      3500,
				Details:   "2000€ le weekend, 3500€ la semaine",
			},
			Guests:        13,
			GuestsDetail:  "10 à 13 personnes",
			Gallery:       []string{"/images/villa-f6-petit-macabou/facade.jpg", "/images/villa-f6-petit-macabou/piscine.jpg"},
			Features:      "5 chambres, piscine, jacuzzi",
			CSVIntegrated: true,
		},
		{
			Name:     "Villa F6 au Lamentin",
			Location: "Morne Pitault, Le Lamentin",
			Category: models.CategorySejour,
			Price:    1500,
			PricingDetails: &models.PricingDetails{
				BasePrice: 1500,
				Weekend:   1500,
				Week:      2600,
				Details:   "1500€ le weekend, 2600€ la semaine",
			},
			Guests:        10,
			GuestsDetail:  "10 personnes",
			Gallery:       []string{"/images/villa-f6-lamentin/salon.jpg"},
			Features:      "Piscine chauffée, vue dégagée",
			CSVIntegrated: true,
		},
		{
			Name:     "Villa F3 Bas de villa Trinité Cosmy",
			Location: "Cosmy, La Trinité",
			Category: models.CategorySejour,
			Price:    500,
			PricingDetails: &models.PricingDetails{
				BasePrice: 500,
				Weekend:   500,
				Week:      900,
				Details:   "500€ le weekend, 900€ la semaine",
			},
			Guests:        5,
			GuestsDetail:  "5 personnes",
			Gallery:       []string{"/images/villa-f3-trinite-cosmy/terrasse.jpg"},
			Features:      "Piscine partagée, terrasse couverte",
			CSVIntegrated: true,
		},
		{
			Name:     "Bas de villa F3 sur Ste Luce",
			Location: "Sainte-Luce",
			Category: models.CategorySejour,
			Price:    470,
			PricingDetails: &models.PricingDetails{
				BasePrice: 470,
				Weekend:   470,
				Week:      850,
				Details:   "470€ le weekend, 850€ la semaine",
			},
			Guests:        6,
			GuestsDetail:  "6 personnes",
			Gallery:       []string{"/images/bas-villa-f3-ste-luce/jardin.jpg"},
			Features:      "Jardin clos, à 5mn des plages",
			CSVIntegrated: true,
		},
		{
			Name:     "Villa F6 sur Ste Luce",
			Location: "Sainte-Luce, à 1mn de la plage",
			Category: models.CategorySejour,
			Price:    1700,
			PricingDetails: &models.PricingDetails{
				BasePrice:  1700,
				Weekend:    1700,
				Week:       3000,
				HighSeason: 3600,
				Details:    "1700€ le weekend, 3000€ la semaine",
			},
			Guests:        14,
			GuestsDetail:  "14 personnes",
			Gallery:       []string{"/images/villa-f6-ste-luce/piscine.jpg", "/images/villa-f6-ste-luce/salon.jpg"},
			Features:      "Accès plage à pied, piscine, 6 chambres",
			CSVIntegrated: true,
		},
		{
			Name:     "Villa F7 Baie des Mulets",
			Location: "Baie des Mulets, Le Vauclin",
			Category: models.CategorySejour,
			Price:    2200,
			PricingDetails: &models.PricingDetails{
				BasePrice: 2200,
				Weekend:   2200,
				Week:      3800,
				Details:   "2200€ le weekend, 3800€ la semaine",
			},
			Guests:        16,
			GuestsDetail:  "16 personnes",
			Gallery:       []string{"/images/villa-f7-baie-des-mulets/vue-mer.jpg"},
			Features:      "Vue mer panoramique, ponton privé",
			CSVIntegrated: true,
		},
		{
			Name:     "Villa F5 La Renée",
			Location: "Quartier La Renée, Rivière-Pilote",
			Category: models.CategorySejour,
			Price:    900,
			PricingDetails: &models.PricingDetails{
				BasePrice: 900,
				Weekend:   900,
				Week:      1600,
				Details:   "900€ le weekend, 1600€ la semaine",
			},
			Guests:        10,
			GuestsDetail:  "10 personnes",
			Gallery:       []string{"/images/villa-f5-la-renee/exterieur.jpg"},
			Features:      "Grand carbet, piscine",
			CSVIntegrated: true,
		},
		{
			Name:     "Appartement F3 Trenelle",
			Location: "Trenelle, Fort-de-France",
			Category: models.CategorySejour,
			Price:    700,
			PricingDetails: &models.PricingDetails{
				BasePrice: 700,
				Week:      700,
				Details:   "700€ la semaine, location au mois possible",
			},
			Guests:        4,
			GuestsDetail:  "4 personnes",
			Gallery:       []string{"/images/appartement-f3-trenelle/sejour.jpg"},
			Features:      "Proche centre-ville, parking",
			CSVIntegrated: true,
		},
		{
			Name:     "Villa F4 Pointe Faula",
			Location: "Pointe Faula, Le Vauclin",
			Category: models.CategorySejour,
			Price:    1300,
			PricingDetails: &models.PricingDetails{
				BasePrice: 1300,
				Weekend:   1300,
				Week:      2300,
				Details:   "1300€ le weekend, 2300€ la semaine",
			},
			Guests:        8,
			GuestsDetail:  "8 personnes",
			Gallery:       []string{"/images/villa-f4-pointe-faula/plage.jpg"},
			Features:      "Spot de kite à 2mn, piscine",
			CSVIntegrated: true,
		},
		{
			Name:     "Villa F4 Padre sur Trois-Ilets",
			Location: "Les Trois-Îlets",
			Category: models.CategorySejour,
			Price:    1550,
			PricingDetails: &models.PricingDetails{
				BasePrice: 1550,
				Weekend:   1550,
				Week:      2700,
				Details:   "1550€ le weekend, 2700€ la semaine",
			},
			Guests:        8,
			GuestsDetail:  "8 personnes",
			Gallery:       []string{"/images/villa-f4-padre/piscine.jpg"},
			Features:      "Vue sur la baie, piscine à débordement",
			CSVIntegrated: true,
		},
		{
			Name:     "Bas de villa F3 Petite Anse",
			Location: "Petite Anse, Les Anses-d'Arlet",
			Category: models.CategorySejour,
			Price:    800,
			PricingDetails: &models.PricingDetails{
				BasePrice: 800,
				Weekend:   800,
				Week:      1400,
				Details:   "800€ le weekend, 1400€ la semaine",
			},
			Guests:        4,
			GuestsDetail:  "4 personnes",
			Gallery:       []string{"/images/bas-villa-f3-petite-anse/anse.jpg"},
			Features:      "Plage à 3mn à pied",
			CSVIntegrated: true,
		},
		{
			Name:     "Studio Cocooning Lamentin",
			Location: "Le Lamentin",
			Category: models.CategorySejour,
			Price:    290,
			PricingDetails: &models.PricingDetails{
				BasePrice: 290,
				Weekend:   290,
				Week:      500,
				Details:   "290€ le weekend, 500€ la semaine",
			},
			Guests:        2,
			GuestsDetail:  "2 personnes",
			Gallery:       []string{"/images/studio-cocooning-lamentin/studio.jpg"},
			Features:      "Jacuzzi privatif",
			CSVIntegrated: true,
		},
		{
			Name:     "Villa Fête Journée Vauclin",
			Location: "Le Vauclin",
			Category: models.CategoryFete,
			Price:    100,
			PricingDetails: &models.PricingDetails{
				BasePrice: 100,
				PartyRates: map[string]float64{
					"10": 100,
					"20": 200,
					"30": 300,
				},
				Details: "Tarif journée selon le nombre d'invités",
			},
			Guests:        10,
			GuestsDetail:  "10 personnes + invités en journée",
			Gallery:       []string{"/images/villa-fete-vauclin/espace.jpg"},
			Features:      "Espace extérieur aménagé, sonorisation autorisée",
			CSVIntegrated: true,
		},
		{
			Name:     "Villa Fête Journée Ducos",
			Location: "Ducos",
			Category: models.CategoryFete,
			Price:    150,
			PricingDetails: &models.PricingDetails{
				BasePrice: 150,
				PartyRates: map[string]float64{
					"15": 150,
					"30": 300,
				},
				Details: "150€ jusqu'à 15 invités, 300€ jusqu'à 30",
			},
			Guests:        15,
			GuestsDetail:  "15 personnes + invités en journée",
			Gallery:       []string{"/images/villa-fete-ducos/carbet.jpg"},
			Features:      "Grand carbet, parking 15 places",
			CSVIntegrated: true,
		},
		{
			Name:     "Villa Fête Journée Fort de France",
			Location: "Fort-de-France",
			Category: models.CategoryFete,
			Price:    100,
			PricingDetails: &models.PricingDetails{
				BasePrice: 100,
				PartyRates: map[string]float64{
					"20": 100,
					"40": 200,
				},
				Details: "Tarif selon le nombre d'invités",
			},
			Guests:        20,
			GuestsDetail:  "20 invités en journée",
			Gallery:       []string{"/images/villa-fete-fdf/terrasse.jpg"},
			Features:      "Terrasse couverte, cuisine équipée",
			CSVIntegrated: true,
		},
		{
			Name:     "Villa Fête Journée Rivière-Pilote",
			Location: "Rivière-Pilote",
			Category: models.CategoryFete,
			Price:    660,
			PricingDetails: &models.PricingDetails{
				BasePrice: 660,
				PartyRates: map[string]float64{
					"50":  660,
					"100": 1100,
				},
				Details: "660€ jusqu'à 50 invités, 1100€ jusqu'à 100",
			},
			Guests:        50,
			GuestsDetail:  "50 à 100 invités en journée",
			Gallery:       []string{"/images/villa-fete-riviere-pilote/salle.jpg"},
			Features:      "Salle de réception, piscine",
			CSVIntegrated: true,
		},
		{
			Name:     "Villa Fête Journée Rivière Salée",
			Location: "Rivière-Salée",
			Category: models.CategoryFete,
			Price:    400,
			PricingDetails: &models.PricingDetails{
				BasePrice: 400,
				PartyRates: map[string]float64{
					"30": 400,
					"60": 750,
				},
				Details: "400€ jusqu'à 30 invités, 750€ jusqu'à 60",
			},
			Guests:        30,
			GuestsDetail:  "30 à 60 invités en journée",
			Gallery:       []string{"/images/villa-fete-riviere-salee/jardin.jpg"},
			Features:      "Grand jardin plat, sono fournie",
			CSVIntegrated: true,
		},
		{
			Name:     "Espace Piscine Journée Bungalow",
			Location: "Petit Macabou au Vauclin",
			Category: models.CategoryPiscine,
			Price:    350,
			PricingDetails: &models.PricingDetails{
				BasePrice: 350,
				PartyRates: map[string]float64{
					"25": 350,
					"50": 600,
				},
				Details: "350€ la journée jusqu'à 25 invités",
			},
			Guests:        9,
			GuestsDetail:  "9 personnes + invités en journée",
			Gallery:       []string{"/images/espace-piscine-bungalow/piscine.jpg", "/images/espace-piscine-bungalow/bungalow.jpg"},
			Features:      "Piscine, bungalow, espace barbecue",
			CSVIntegrated: true,
		},
	}
}

// DefaultRequiredVillas are the audit anchors: villas every release must
// carry at their price-sheet rate.
func DefaultRequiredVillas() []RequiredVilla {
	return []RequiredVilla{
		{NameSubstring: "Villa F3 sur Petit Macabou", ExpectedPrice: 850},
		{NameSubstring: "Villa F5 sur Ste Anne", ExpectedPrice: 1350},
		{NameSubstring: "Espace Piscine Journée", ExpectedPrice: 350},
	}
}
