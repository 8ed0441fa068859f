package seed

// City is a place a seeded campground is located in.
type City struct {
	City  string
	State string
}

var descriptors = []string{
	"Forest", "Ancient", "Petrified", "Roaring", "Cascade", "Tumbling",
	"Silent", "Redwood", "Bullfrog", "Maple", "Misty", "Elk", "Grizzly",
	"Ocean", "Sea", "Sky", "Dusty", "Diamond",
}

var places = []string{
	"Flats", "Village", "Canyon", "Pond", "Group Camp", "Horse Camp",
	"Ghost Town", "Camp", "Dispersed Camp", "Backcountry", "River", "Creek",
	"Creekside", "Bay", "Spring", "Bayshore", "Sands", "Mule Camp",
	"Hunting Camp", "Cliffs", "Hollow",
}

var cities = []City{
	{"New York", "New York"},
	{"Los Angeles", "California"},
	{"Chicago", "Illinois"},
	{"Houston", "Texas"},
	{"Philadelphia", "Pennsylvania"},
	{"Phoenix", "Arizona"},
	{"San Antonio", "Texas"},
	{"San Diego", "California"},
	{"Dallas", "Texas"},
	{"San Jose", "California"},
	{"Austin", "Texas"},
	{"Indianapolis", "Indiana"},
	{"Jacksonville", "Florida"},
	{"San Francisco", "California"},
	{"Columbus", "Ohio"},
	{"Charlotte", "North Carolina"},
	{"Fort Worth", "Texas"},
	{"Detroit", "Michigan"},
	{"El Paso", "Texas"},
	{"Memphis", "Tennessee"},
	{"Seattle", "Washington"},
	{"Denver", "Colorado"},
	{"Washington", "District of Columbia"},
	{"Boston", "Massachusetts"},
	{"Nashville", "Tennessee"},
	{"Baltimore", "Maryland"},
	{"Oklahoma City", "Oklahoma"},
	{"Louisville", "Kentucky"},
	{"Portland", "Oregon"},
	{"Las Vegas", "Nevada"},
	{"Milwaukee", "Wisconsin"},
	{"Albuquerque", "New Mexico"},
	{"Tucson", "Arizona"},
	{"Fresno", "California"},
	{"Sacramento", "California"},
	{"Long Beach", "California"},
	{"Kansas City", "Missouri"},
	{"Mesa", "Arizona"},
	{"Virginia Beach", "Virginia"},
	{"Atlanta", "Georgia"},
	{"Colorado Springs", "Colorado"},
	{"Omaha", "Nebraska"},
	{"Raleigh", "North Carolina"},
	{"Miami", "Florida"},
	{"Oakland", "California"},
	{"Minneapolis", "Minnesota"},
	{"Tulsa", "Oklahoma"},
	{"Cleveland", "Ohio"},
	{"Wichita", "Kansas"},
	{"Arlington", "Texas"},
	{"New Orleans", "Louisiana"},
	{"Bakersfield", "California"},
	{"Tampa", "Florida"},
	{"Honolulu", "Hawaii"},
	{"Anaheim", "California"},
	{"Aurora", "Colorado"},
	{"Santa Ana", "California"},
	{"St. Louis", "Missouri"},
	{"Riverside", "California"},
	{"Corpus Christi", "Texas"},
	{"Pittsburgh", "Pennsylvania"},
	{"Lexington", "Kentucky"},
	{"Anchorage", "Alaska"},
	{"Stockton", "California"},
	{"Cincinnati", "Ohio"},
	{"Saint Paul", "Minnesota"},
	{"Toledo", "Ohio"},
	{"Newark", "New Jersey"},
	{"Greensboro", "North Carolina"},
	{"Plano", "Texas"},
	{"Henderson", "Nevada"},
	{"Lincoln", "Nebraska"},
	{"Buffalo", "New York"},
	{"Fort Wayne", "Indiana"},
	{"Jersey City", "New Jersey"},
	{"Chula Vista", "California"},
	{"Orlando", "Florida"},
	{"St. Petersburg", "Florida"},
	{"Norfolk", "Virginia"},
	{"Chandler", "Arizona"},
	{"Laredo", "Texas"},
	{"Madison", "Wisconsin"},
	{"Durham", "North Carolina"},
	{"Lubbock", "Texas"},
	{"Winston-Salem", "North Carolina"},
	{"Garland", "Texas"},
	{"Glendale", "Arizona"},
	{"Hialeah", "Florida"},
	{"Reno", "Nevada"},
	{"Baton Rouge", "Louisiana"},
	{"Irvine", "California"},
	{"Chesapeake", "Virginia"},
	{"Irving", "Texas"},
	{"Scottsdale", "Arizona"},
	{"North Las Vegas", "Nevada"},
	{"Fremont", "California"},
	{"Gilbert", "Arizona"},
	{"San Bernardino", "California"},
	{"Boise", "Idaho"},
	{"Birmingham", "Alabama"},
}
