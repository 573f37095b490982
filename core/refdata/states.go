// Package refdata holds the static lookup tables backing the admission form:
// the state→district map and the education board list. None of it is
// user-editable.
package refdata

import "sort"

// StateDistricts maps each state to its district list. Districts offered for
// an address are restricted to the selected state's entry.
var StateDistricts = map[string][]string{
	"Andhra Pradesh": {
		"Anantapur", "Chittoor", "East Godavari", "Guntur", "Krishna", "Kurnool",
		"Prakasam", "Srikakulam", "Sri Potti Sriramulu Nellore", "Visakhapatnam",
		"Vizianagaram", "West Godavari", "YSR Kadapa",
	},
	"Assam": {
		"Barpeta", "Bongaigaon", "Cachar", "Darrang", "Dibrugarh", "Goalpara",
		"Golaghat", "Guwahati", "Jorhat", "Kamrup", "Karimganj", "Lakhimpur",
		"Nagaon", "Silchar", "Sivasagar", "Sonitpur", "Tezpur", "Tinsukia",
	},
	"Bihar": {
		"Araria", "Arwal", "Aurangabad", "Banka", "Begusarai", "Bhagalpur",
		"Bhojpur", "Buxar", "Darbhanga", "East Champaran", "Gaya", "Gopalganj",
		"Jamui", "Jehanabad", "Kaimur", "Katihar", "Khagaria", "Kishanganj",
		"Lakhisarai", "Madhepura", "Madhubani", "Munger", "Muzaffarpur",
		"Nalanda", "Nawada", "Patna", "Purnia", "Rohtas", "Saharsa", "Samastipur",
		"Saran", "Sheikhpura", "Sheohar", "Sitamarhi", "Siwan", "Supaul",
		"Vaishali", "West Champaran",
	},
	"Chhattisgarh": {
		"Balod", "Baloda Bazar", "Bastar", "Bilaspur", "Dhamtari", "Durg",
		"Janjgir-Champa", "Jashpur", "Korba", "Mahasamund", "Raigarh", "Raipur",
		"Rajnandgaon", "Surguja",
	},
	"Delhi": {
		"Central Delhi", "East Delhi", "New Delhi", "North Delhi",
		"North East Delhi", "North West Delhi", "Shahdara", "South Delhi",
		"South East Delhi", "South West Delhi", "West Delhi",
	},
	"Gujarat": {
		"Ahmedabad", "Amreli", "Anand", "Banaskantha", "Bharuch", "Bhavnagar",
		"Gandhinagar", "Jamnagar", "Junagadh", "Kutch", "Mehsana", "Navsari",
		"Panchmahal", "Patan", "Porbandar", "Rajkot", "Sabarkantha", "Surat",
		"Surendranagar", "Vadodara", "Valsad",
	},
	"Haryana": {
		"Ambala", "Bhiwani", "Faridabad", "Fatehabad", "Gurugram", "Hisar",
		"Jhajjar", "Jind", "Kaithal", "Karnal", "Kurukshetra", "Mahendragarh",
		"Nuh", "Palwal", "Panchkula", "Panipat", "Rewari", "Rohtak", "Sirsa",
		"Sonipat", "Yamunanagar",
	},
	"Himachal Pradesh": {
		"Bilaspur", "Chamba", "Hamirpur", "Kangra", "Kinnaur", "Kullu",
		"Lahaul and Spiti", "Mandi", "Shimla", "Sirmaur", "Solan", "Una",
	},
	"Jharkhand": {
		"Bokaro", "Deoghar", "Dhanbad", "Dumka", "East Singhbhum", "Garhwa",
		"Giridih", "Godda", "Gumla", "Hazaribagh", "Jamtara", "Koderma",
		"Palamu", "Ramgarh", "Ranchi", "Sahibganj", "West Singhbhum",
	},
	"Karnataka": {
		"Bagalkot", "Ballari", "Belagavi", "Bengaluru Rural", "Bengaluru Urban",
		"Bidar", "Chikkamagaluru", "Chitradurga", "Dakshina Kannada", "Davanagere",
		"Dharwad", "Hassan", "Kalaburagi", "Kolar", "Mandya", "Mysuru", "Raichur",
		"Shivamogga", "Tumakuru", "Udupi", "Vijayapura",
	},
	"Kerala": {
		"Alappuzha", "Ernakulam", "Idukki", "Kannur", "Kasaragod", "Kollam",
		"Kottayam", "Kozhikode", "Malappuram", "Palakkad", "Pathanamthitta",
		"Thiruvananthapuram", "Thrissur", "Wayanad",
	},
	"Madhya Pradesh": {
		"Balaghat", "Betul", "Bhind", "Bhopal", "Chhatarpur", "Chhindwara",
		"Damoh", "Datia", "Dewas", "Dhar", "Guna", "Gwalior", "Hoshangabad",
		"Indore", "Jabalpur", "Katni", "Khandwa", "Khargone", "Mandsaur",
		"Morena", "Panna", "Ratlam", "Rewa", "Sagar", "Satna", "Sehore",
		"Shivpuri", "Tikamgarh", "Ujjain", "Vidisha",
	},
	"Maharashtra": {
		"Ahmednagar", "Akola", "Amravati", "Aurangabad", "Beed", "Bhandara",
		"Buldhana", "Chandrapur", "Dhule", "Gadchiroli", "Gondia", "Jalgaon",
		"Jalna", "Kolhapur", "Latur", "Mumbai City", "Mumbai Suburban", "Nagpur",
		"Nanded", "Nashik", "Osmanabad", "Palghar", "Parbhani", "Pune", "Raigad",
		"Ratnagiri", "Sangli", "Satara", "Solapur", "Thane", "Wardha", "Yavatmal",
	},
	"Odisha": {
		"Angul", "Balangir", "Balasore", "Bargarh", "Bhadrak", "Cuttack",
		"Dhenkanal", "Ganjam", "Jagatsinghpur", "Jajpur", "Jharsuguda",
		"Kalahandi", "Kendrapara", "Keonjhar", "Khordha", "Koraput",
		"Mayurbhanj", "Puri", "Rayagada", "Sambalpur", "Sundargarh",
	},
	"Punjab": {
		"Amritsar", "Barnala", "Bathinda", "Faridkot", "Fatehgarh Sahib",
		"Fazilka", "Ferozepur", "Gurdaspur", "Hoshiarpur", "Jalandhar",
		"Kapurthala", "Ludhiana", "Mansa", "Moga", "Mohali", "Muktsar",
		"Pathankot", "Patiala", "Rupnagar", "Sangrur", "Tarn Taran",
	},
	"Rajasthan": {
		"Ajmer", "Alwar", "Banswara", "Barmer", "Bharatpur", "Bhilwara",
		"Bikaner", "Bundi", "Chittorgarh", "Churu", "Dausa", "Dholpur",
		"Dungarpur", "Hanumangarh", "Jaipur", "Jaisalmer", "Jhalawar",
		"Jhunjhunu", "Jodhpur", "Karauli", "Kota", "Nagaur", "Pali",
		"Pratapgarh", "Rajsamand", "Sawai Madhopur", "Sikar", "Sirohi",
		"Sri Ganganagar", "Tonk", "Udaipur",
	},
	"Tamil Nadu": {
		"Chennai", "Coimbatore", "Cuddalore", "Dharmapuri", "Dindigul", "Erode",
		"Kanchipuram", "Kanyakumari", "Karur", "Madurai", "Nagapattinam",
		"Namakkal", "Salem", "Sivaganga", "Thanjavur", "Theni", "Thoothukudi",
		"Tiruchirappalli", "Tirunelveli", "Tiruppur", "Tiruvallur",
		"Tiruvannamalai", "Vellore", "Villupuram", "Virudhunagar",
	},
	"Telangana": {
		"Adilabad", "Hyderabad", "Jagtial", "Karimnagar", "Khammam",
		"Mahabubnagar", "Medak", "Medchal-Malkajgiri", "Nalgonda", "Nizamabad",
		"Rangareddy", "Sangareddy", "Siddipet", "Suryapet", "Warangal",
	},
	"Uttar Pradesh": {
		"Agra", "Aligarh", "Ambedkar Nagar", "Amethi", "Amroha", "Auraiya",
		"Ayodhya", "Azamgarh", "Baghpat", "Bahraich", "Ballia", "Balrampur",
		"Banda", "Barabanki", "Bareilly", "Basti", "Bhadohi", "Bijnor",
		"Budaun", "Bulandshahr", "Chandauli", "Chitrakoot", "Deoria", "Etah",
		"Etawah", "Farrukhabad", "Fatehpur", "Firozabad", "Gautam Buddha Nagar",
		"Ghaziabad", "Ghazipur", "Gonda", "Gorakhpur", "Hamirpur", "Hapur",
		"Hardoi", "Hathras", "Jalaun", "Jaunpur", "Jhansi", "Kannauj",
		"Kanpur Dehat", "Kanpur Nagar", "Kasganj", "Kaushambi", "Kushinagar",
		"Lakhimpur Kheri", "Lalitpur", "Lucknow", "Maharajganj", "Mahoba",
		"Mainpuri", "Mathura", "Mau", "Meerut", "Mirzapur", "Moradabad",
		"Muzaffarnagar", "Pilibhit", "Pratapgarh", "Prayagraj", "Raebareli",
		"Rampur", "Saharanpur", "Sambhal", "Sant Kabir Nagar", "Shahjahanpur",
		"Shamli", "Shravasti", "Siddharthnagar", "Sitapur", "Sonbhadra",
		"Sultanpur", "Unnao", "Varanasi",
	},
	"Uttarakhand": {
		"Almora", "Bageshwar", "Chamoli", "Champawat", "Dehradun", "Haridwar",
		"Nainital", "Pauri Garhwal", "Pithoragarh", "Rudraprayag",
		"Tehri Garhwal", "Udham Singh Nagar", "Uttarkashi",
	},
	"West Bengal": {
		"Alipurduar", "Bankura", "Birbhum", "Cooch Behar", "Darjeeling",
		"Hooghly", "Howrah", "Jalpaiguri", "Jhargram", "Kalimpong", "Kolkata",
		"Malda", "Murshidabad", "Nadia", "North 24 Parganas", "Paschim Bardhaman",
		"Paschim Medinipur", "Purba Bardhaman", "Purba Medinipur", "Purulia",
		"South 24 Parganas", "Uttar Dinajpur",
	},
}

// StateNames returns the configured states in stable sorted order.
func StateNames() []string {
	names := make([]string, 0, len(StateDistricts))
	for name := range StateDistricts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Districts returns the district list for a state; nil for an unknown state.
func Districts(state string) []string {
	return StateDistricts[state]
}

// ValidState reports whether the state exists in the lookup table.
func ValidState(state string) bool {
	_, ok := StateDistricts[state]
	return ok
}

// ValidDistrict reports whether the district belongs to the given state.
func ValidDistrict(state, district string) bool {
	for _, d := range StateDistricts[state] {
		if d == district {
			return true
		}
	}
	return false
}
