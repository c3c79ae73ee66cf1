package seed

// Demo catalog written by Service.Seed

var demoConcerns = []string{"acne scars", "dark circles", "double chin"}

var demoTreatments = []string{
	"Microneedling",
	"Chemical Peel",
	"Laser Resurfacing",
	"Under-eye Filler",
	"PRP Under-eye",
	"HIFU",
	"Kybella",
}

// demoMapping keeps concern order; treatment lists keep link order
var demoMapping = []struct {
	concern    string
	treatments []string
}{
	{"acne scars", []string{"Microneedling", "Chemical Peel", "Laser Resurfacing"}},
	{"dark circles", []string{"Under-eye Filler", "PRP Under-eye"}},
	{"double chin", []string{"HIFU", "Kybella"}},
}

type demoPackage struct {
	clinic    string
	name      string
	treatment string
	price     int64
}

var demoPackages = []demoPackage{
	{"Glow Clinic", "PRP Under-eye Rejuvenation", "PRP Under-eye", 3500},
	{"Aesthetic Center", "HIFU Chin Sculpt", "HIFU", 7000},
	{"Skin Care Hub", "Advanced Microneedling", "Microneedling", 5500},
	{"Laser Beauty", "Laser Resurfacing Pro", "Laser Resurfacing", 9500},
	{"Dermaview", "Under-eye Filler Special", "Under-eye Filler", 6000},
	{"Glow Clinic", "Chemical Peel Classic", "Chemical Peel", 4000},
}
