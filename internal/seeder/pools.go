package seeder

import (
	"fmt"
	"math/rand"
)

// pools backs columns tagged with a pool name. Small pools keep GROUP BY
// queries over generated data meaningful.
var pools = map[string][]string{
	"countries": {
		"United States", "Germany", "Japan", "United Kingdom", "France",
		"Canada", "Australia", "Brazil", "India", "Netherlands",
	},
	"currencies": {"USD", "EUR", "GBP", "JPY", "CAD", "AUD", "CHF", "INR"},
	"payment_terms": {
		"Net 15", "Net 30", "Net 60", "Net 90", "Due on Receipt", "2/10 Net 30",
	},
	"timezones": {
		"America/New_York", "America/Chicago", "America/Los_Angeles",
		"Europe/London", "Europe/Berlin", "Asia/Tokyo", "Australia/Sydney", "UTC",
	},
	"plants": {
		"Plant Alpha", "Plant Beta", "Plant Gamma", "Plant Delta", "Plant Omega",
	},
	"first_names": {
		"James", "Mary", "Wei", "Fatima", "Carlos", "Yuki", "Priya", "Lars",
		"Amara", "Diego", "Ingrid", "Kofi", "Elena", "Hassan", "Mei", "Tomás",
	},
	"last_names": {
		"Smith", "García", "Müller", "Tanaka", "Okafor", "Johansson", "Patel",
		"Kowalski", "Rossi", "Chen", "Dubois", "Silva", "Novak", "Haddad",
	},
	"departments": {
		"Engineering", "Sales", "Marketing", "Finance", "Human Resources",
		"Operations", "Customer Support", "Legal", "Research", "Procurement",
	},
	"job_titles": {
		"Software Engineer", "Senior Software Engineer", "Staff Engineer",
		"Product Manager", "Account Executive", "Data Analyst",
		"Operations Manager", "Financial Controller", "HR Business Partner",
		"Support Specialist", "QA Engineer", "Site Reliability Engineer",
	},
	"skills": {
		"Go", "SQL", "Python", "Kubernetes", "Terraform", "React",
		"Data Modeling", "Project Management", "Negotiation", "Public Speaking",
	},
	"certifications": {
		"AWS Solutions Architect", "CKA", "PMP", "CPA", "Six Sigma Green Belt",
		"CISSP", "Scrum Master",
	},
	"sensor_locations": {
		"Boiler Room A", "Rooftop North", "Cold Storage 2", "Assembly Line 3",
		"Warehouse Dock 5", "Server Room", "Greenhouse East", "Pump Station 1",
	},
	"sensor_labels": {
		"calibrated", "outdoor", "critical", "battery", "wireless", "legacy",
		"redundant", "primary",
	},
	"categories": {
		"Electronics", "Home & Kitchen", "Sports & Outdoors", "Office Supplies",
		"Tools & Hardware", "Toys & Games", "Health & Beauty", "Automotive",
	},
	"subcategories": {
		"Audio", "Lighting", "Storage", "Fitness", "Stationery", "Power Tools",
		"Board Games", "Skincare", "Interior", "Accessories",
	},
	"brands": {
		"Northwind", "Acme", "Globex", "Initech", "Umbra", "Vandelay",
		"Stark Industrial", "Wayne Tools", "Aperture", "Tyrell",
	},
	"colors": {
		"Black", "White", "Silver", "Navy", "Forest Green", "Burgundy",
		"Charcoal", "Sand", "Orange", "Teal",
	},
	"tags": {
		"bestseller", "new-arrival", "clearance", "eco-friendly", "imported",
		"handmade", "limited-edition", "refurbished", "bundle", "exclusive",
	},
}

// Small lexicons for free-text columns, in the spirit of a classic lorem
// generator but with domain vocabulary.
var (
	words = []string{
		"alpha", "beacon", "cobalt", "delta", "ember", "flux", "granite",
		"harbor", "ion", "juniper", "krypton", "lumen", "meridian", "nimbus",
		"onyx", "pylon", "quartz", "ridge", "summit", "terra", "umbra",
		"vertex", "willow", "zenith",
	}
	sentences = []string{
		"Quarterly review pending final sign-off from the regional office.",
		"Handle with care; packaging is not rated for stacked storage.",
		"Customer requested expedited processing on all future orders.",
		"Recalibrated after the last maintenance window.",
		"Legacy record migrated from the previous system of record.",
		"Approved by compliance with no outstanding remarks.",
		"Follow-up scheduled for the next billing cycle.",
		"Batch imported during the warehouse consolidation project.",
	}
	productNouns = []string{
		"Desk Lamp", "Water Bottle", "Keyboard", "Backpack", "Monitor Stand",
		"Drill Set", "Yoga Mat", "Notebook", "Headphones", "Tool Chest",
		"Office Chair", "Power Bank", "Travel Mug", "Wall Clock",
	}
	productAdjectives = []string{
		"Compact", "Ergonomic", "Foldable", "Heavy-Duty", "Wireless",
		"Insulated", "Adjustable", "Portable", "Premium", "Modular",
	}
	emailDomains = []string{"example.com", "mail.test", "corp.example", "demo.org"}
	streets      = []string{
		"Maple Avenue", "Harbor Road", "Summit Drive", "Willow Lane",
		"Granite Street", "Meridian Boulevard", "Juniper Way",
	}
	cities = []string{
		"Springfield", "Riverton", "Lakewood", "Fairview", "Brookside",
		"Milltown", "Cedar Falls",
	}
	carriers  = []string{"DHL", "UPS", "FedEx", "USPS", "GLS"}
	relations = []string{"Spouse", "Parent", "Sibling", "Friend", "Partner"}
	languages = []string{"en", "de", "ja", "fr", "es", "pt"}
	materials = []string{"aluminum", "steel", "oak", "polycarbonate", "bamboo", "canvas"}
)

func pick(rng *rand.Rand, values []string) string {
	return values[rng.Intn(len(values))]
}

// sample draws up to n distinct entries, fewer when the pool is smaller.
func sample(rng *rand.Rand, values []string, n int) []string {
	if n > len(values) {
		n = len(values)
	}
	out := make([]string, 0, n)
	for _, i := range rng.Perm(len(values))[:n] {
		out = append(out, values[i])
	}
	return out
}

const alnum = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func randString(rng *rand.Rand, n int, alphabet string) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = alphabet[rng.Intn(len(alphabet))]
	}
	return string(b)
}

func randIPv4(rng *rand.Rand) string {
	return fmt.Sprintf("10.%d.%d.%d", rng.Intn(256), rng.Intn(256), rng.Intn(254)+1)
}

func randMAC(rng *rand.Rand) string {
	return fmt.Sprintf("%02x:%02x:%02x:%02x:%02x:%02x",
		rng.Intn(256), rng.Intn(256), rng.Intn(256),
		rng.Intn(256), rng.Intn(256), rng.Intn(256))
}

func randSemver(rng *rand.Rand) string {
	return fmt.Sprintf("%d.%d.%d", rng.Intn(4)+1, rng.Intn(10), rng.Intn(20))
}

func randPhone(rng *rand.Rand) string {
	return fmt.Sprintf("+1-%03d-%03d-%04d", rng.Intn(800)+200, rng.Intn(1000), rng.Intn(10000))
}
