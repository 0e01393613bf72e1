package entity

// Directory of major international airports, keyed by IATA code.
// Reference data only: seeded once at startup and never mutated.
var MajorAirports = []Airport{
	// North America
	{Code: "JFK", Name: "John F. Kennedy International Airport", City: "New York", Country: "United States", Region: "North America"},
	{Code: "LAX", Name: "Los Angeles International Airport", City: "Los Angeles", Country: "United States", Region: "North America"},
	{Code: "ORD", Name: "O'Hare International Airport", City: "Chicago", Country: "United States", Region: "North America"},
	{Code: "DFW", Name: "Dallas/Fort Worth International Airport", City: "Dallas", Country: "United States", Region: "North America"},
	{Code: "DEN", Name: "Denver International Airport", City: "Denver", Country: "United States", Region: "North America"},
	{Code: "LAS", Name: "Harry Reid International Airport", City: "Las Vegas", Country: "United States", Region: "North America"},
	{Code: "PHX", Name: "Phoenix Sky Harbor International Airport", City: "Phoenix", Country: "United States", Region: "North America"},
	{Code: "IAH", Name: "George Bush Intercontinental Airport", City: "Houston", Country: "United States", Region: "North America"},
	{Code: "MIA", Name: "Miami International Airport", City: "Miami", Country: "United States", Region: "North America"},
	{Code: "SEA", Name: "Seattle-Tacoma International Airport", City: "Seattle", Country: "United States", Region: "North America"},
	{Code: "SFO", Name: "San Francisco International Airport", City: "San Francisco", Country: "United States", Region: "North America"},
	{Code: "LGA", Name: "LaGuardia Airport", City: "New York", Country: "United States", Region: "North America"},
	{Code: "EWR", Name: "Newark Liberty International Airport", City: "Newark", Country: "United States", Region: "North America"},
	{Code: "BOS", Name: "Logan International Airport", City: "Boston", Country: "United States", Region: "North America"},
	{Code: "BWI", Name: "Baltimore/Washington International Airport", City: "Baltimore", Country: "United States", Region: "North America"},
	{Code: "DCA", Name: "Ronald Reagan Washington National Airport", City: "Washington D.C.", Country: "United States", Region: "North America"},
	{Code: "IAD", Name: "Washington Dulles International Airport", City: "Washington D.C.", Country: "United States", Region: "North America"},
	{Code: "ATL", Name: "Hartsfield-Jackson Atlanta International Airport", City: "Atlanta", Country: "United States", Region: "North America"},
	{Code: "CLT", Name: "Charlotte Douglas International Airport", City: "Charlotte", Country: "United States", Region: "North America"},
	{Code: "MCO", Name: "Orlando International Airport", City: "Orlando", Country: "United States", Region: "North America"},
	{Code: "YYZ", Name: "Toronto Pearson International Airport", City: "Toronto", Country: "Canada", Region: "North America"},
	{Code: "YVR", Name: "Vancouver International Airport", City: "Vancouver", Country: "Canada", Region: "North America"},
	{Code: "YUL", Name: "Montréal-Pierre Elliott Trudeau International Airport", City: "Montreal", Country: "Canada", Region: "North America"},
	{Code: "MEX", Name: "Mexico City International Airport", City: "Mexico City", Country: "Mexico", Region: "North America"},
	// Europe
	{Code: "LHR", Name: "Heathrow Airport", City: "London", Country: "United Kingdom", Region: "Europe"},
	{Code: "CDG", Name: "Charles de Gaulle Airport", City: "Paris", Country: "France", Region: "Europe"},
	{Code: "FRA", Name: "Frankfurt Airport", City: "Frankfurt", Country: "Germany", Region: "Europe"},
	{Code: "AMS", Name: "Amsterdam Airport Schiphol", City: "Amsterdam", Country: "Netherlands", Region: "Europe"},
	{Code: "MAD", Name: "Adolfo Suárez Madrid-Barajas Airport", City: "Madrid", Country: "Spain", Region: "Europe"},
	{Code: "BCN", Name: "Barcelona-El Prat Airport", City: "Barcelona", Country: "Spain", Region: "Europe"},
	{Code: "FCO", Name: "Leonardo da Vinci-Fiumicino Airport", City: "Rome", Country: "Italy", Region: "Europe"},
	{Code: "MXP", Name: "Milan Malpensa Airport", City: "Milan", Country: "Italy", Region: "Europe"},
	{Code: "MUC", Name: "Munich Airport", City: "Munich", Country: "Germany", Region: "Europe"},
	{Code: "ZUR", Name: "Zurich Airport", City: "Zurich", Country: "Switzerland", Region: "Europe"},
	{Code: "VIE", Name: "Vienna International Airport", City: "Vienna", Country: "Austria", Region: "Europe"},
	{Code: "CPH", Name: "Copenhagen Airport", City: "Copenhagen", Country: "Denmark", Region: "Europe"},
	{Code: "ARN", Name: "Stockholm Arlanda Airport", City: "Stockholm", Country: "Sweden", Region: "Europe"},
	{Code: "OSL", Name: "Oslo Airport", City: "Oslo", Country: "Norway", Region: "Europe"},
	{Code: "HEL", Name: "Helsinki-Vantaa Airport", City: "Helsinki", Country: "Finland", Region: "Europe"},
	{Code: "IST", Name: "Istanbul Airport", City: "Istanbul", Country: "Turkey", Region: "Europe"},
	{Code: "ATH", Name: "Athens International Airport", City: "Athens", Country: "Greece", Region: "Europe"},
	{Code: "LGW", Name: "Gatwick Airport", City: "London", Country: "United Kingdom", Region: "Europe"},
	{Code: "STN", Name: "Stansted Airport", City: "London", Country: "United Kingdom", Region: "Europe"},
	{Code: "MAN", Name: "Manchester Airport", City: "Manchester", Country: "United Kingdom", Region: "Europe"},
	{Code: "EDI", Name: "Edinburgh Airport", City: "Edinburgh", Country: "United Kingdom", Region: "Europe"},
	{Code: "DUB", Name: "Dublin Airport", City: "Dublin", Country: "Ireland", Region: "Europe"},
	{Code: "BRU", Name: "Brussels Airport", City: "Brussels", Country: "Belgium", Region: "Europe"},
	{Code: "LIS", Name: "Lisbon Airport", City: "Lisbon", Country: "Portugal", Region: "Europe"},
	{Code: "OPO", Name: "Francisco Sá Carneiro Airport", City: "Porto", Country: "Portugal", Region: "Europe"},
	{Code: "PRG", Name: "Václav Havel Airport Prague", City: "Prague", Country: "Czech Republic", Region: "Europe"},
	{Code: "WAW", Name: "Warsaw Chopin Airport", City: "Warsaw", Country: "Poland", Region: "Europe"},
	{Code: "BUD", Name: "Budapest Ferenc Liszt International Airport", City: "Budapest", Country: "Hungary", Region: "Europe"},
	// Asia
	{Code: "NRT", Name: "Narita International Airport", City: "Tokyo", Country: "Japan", Region: "Asia"},
	{Code: "HND", Name: "Haneda Airport", City: "Tokyo", Country: "Japan", Region: "Asia"},
	{Code: "KIX", Name: "Kansai International Airport", City: "Osaka", Country: "Japan", Region: "Asia"},
	{Code: "ICN", Name: "Incheon International Airport", City: "Seoul", Country: "South Korea", Region: "Asia"},
	{Code: "PEK", Name: "Beijing Capital International Airport", City: "Beijing", Country: "China", Region: "Asia"},
	{Code: "PKX", Name: "Beijing Daxing International Airport", City: "Beijing", Country: "China", Region: "Asia"},
	{Code: "PVG", Name: "Shanghai Pudong International Airport", City: "Shanghai", Country: "China", Region: "Asia"},
	{Code: "SHA", Name: "Shanghai Hongqiao International Airport", City: "Shanghai", Country: "China", Region: "Asia"},
	{Code: "CAN", Name: "Guangzhou Baiyun International Airport", City: "Guangzhou", Country: "China", Region: "Asia"},
	{Code: "SZX", Name: "Shenzhen Bao'an International Airport", City: "Shenzhen", Country: "China", Region: "Asia"},
	{Code: "HKG", Name: "Hong Kong International Airport", City: "Hong Kong", Country: "Hong Kong", Region: "Asia"},
	{Code: "TPE", Name: "Taiwan Taoyuan International Airport", City: "Taipei", Country: "Taiwan", Region: "Asia"},
	{Code: "SIN", Name: "Singapore Changi Airport", City: "Singapore", Country: "Singapore", Region: "Asia"},
	{Code: "KUL", Name: "Kuala Lumpur International Airport", City: "Kuala Lumpur", Country: "Malaysia", Region: "Asia"},
	{Code: "BKK", Name: "Suvarnabhumi Airport", City: "Bangkok", Country: "Thailand", Region: "Asia"},
	{Code: "DMK", Name: "Don Mueang International Airport", City: "Bangkok", Country: "Thailand", Region: "Asia"},
	{Code: "CGK", Name: "Soekarno-Hatta International Airport", City: "Jakarta", Country: "Indonesia", Region: "Asia"},
	{Code: "MNL", Name: "Ninoy Aquino International Airport", City: "Manila", Country: "Philippines", Region: "Asia"},
	{Code: "DEL", Name: "Indira Gandhi International Airport", City: "New Delhi", Country: "India", Region: "Asia"},
	{Code: "BOM", Name: "Chhatrapati Shivaji Maharaj International Airport", City: "Mumbai", Country: "India", Region: "Asia"},
	{Code: "BLR", Name: "Kempegowda International Airport", City: "Bangalore", Country: "India", Region: "Asia"},
	{Code: "MAA", Name: "Chennai International Airport", City: "Chennai", Country: "India", Region: "Asia"},
	{Code: "HYD", Name: "Rajiv Gandhi International Airport", City: "Hyderabad", Country: "India", Region: "Asia"},
	{Code: "CCU", Name: "Netaji Subhas Chandra Bose International Airport", City: "Kolkata", Country: "India", Region: "Asia"},
	// Middle East
	{Code: "DXB", Name: "Dubai International Airport", City: "Dubai", Country: "United Arab Emirates", Region: "Middle East"},
	{Code: "DWC", Name: "Al Maktoum International Airport", City: "Dubai", Country: "United Arab Emirates", Region: "Middle East"},
	{Code: "AUH", Name: "Abu Dhabi International Airport", City: "Abu Dhabi", Country: "United Arab Emirates", Region: "Middle East"},
	{Code: "DOH", Name: "Hamad International Airport", City: "Doha", Country: "Qatar", Region: "Middle East"},
	{Code: "KWI", Name: "Kuwait International Airport", City: "Kuwait City", Country: "Kuwait", Region: "Middle East"},
	{Code: "BAH", Name: "Bahrain International Airport", City: "Manama", Country: "Bahrain", Region: "Middle East"},
	{Code: "RUH", Name: "King Khalid International Airport", City: "Riyadh", Country: "Saudi Arabia", Region: "Middle East"},
	{Code: "JED", Name: "King Abdulaziz International Airport", City: "Jeddah", Country: "Saudi Arabia", Region: "Middle East"},
	{Code: "TLV", Name: "Ben Gurion Airport", City: "Tel Aviv", Country: "Israel", Region: "Middle East"},
	// Africa
	{Code: "CAI", Name: "Cairo International Airport", City: "Cairo", Country: "Egypt", Region: "Africa"},
	{Code: "CPT", Name: "Cape Town International Airport", City: "Cape Town", Country: "South Africa", Region: "Africa"},
	{Code: "JNB", Name: "O.R. Tambo International Airport", City: "Johannesburg", Country: "South Africa", Region: "Africa"},
	{Code: "CMN", Name: "Mohammed V International Airport", City: "Casablanca", Country: "Morocco", Region: "Africa"},
	{Code: "LOS", Name: "Murtala Muhammed International Airport", City: "Lagos", Country: "Nigeria", Region: "Africa"},
	{Code: "ADD", Name: "Addis Ababa Bole International Airport", City: "Addis Ababa", Country: "Ethiopia", Region: "Africa"},
	// Oceania
	{Code: "SYD", Name: "Sydney Kingsford Smith Airport", City: "Sydney", Country: "Australia", Region: "Oceania"},
	{Code: "MEL", Name: "Melbourne Airport", City: "Melbourne", Country: "Australia", Region: "Oceania"},
	{Code: "BNE", Name: "Brisbane Airport", City: "Brisbane", Country: "Australia", Region: "Oceania"},
	{Code: "PER", Name: "Perth Airport", City: "Perth", Country: "Australia", Region: "Oceania"},
	{Code: "ADL", Name: "Adelaide Airport", City: "Adelaide", Country: "Australia", Region: "Oceania"},
	{Code: "AKL", Name: "Auckland Airport", City: "Auckland", Country: "New Zealand", Region: "Oceania"},
	{Code: "CHC", Name: "Christchurch Airport", City: "Christchurch", Country: "New Zealand", Region: "Oceania"},
	// South America
	{Code: "GRU", Name: "São Paulo/Guarulhos International Airport", City: "São Paulo", Country: "Brazil", Region: "South America"},
	{Code: "GIG", Name: "Rio de Janeiro–Galeão International Airport", City: "Rio de Janeiro", Country: "Brazil", Region: "South America"},
	{Code: "BSB", Name: "Brasília International Airport", City: "Brasília", Country: "Brazil", Region: "South America"},
	{Code: "EZE", Name: "Ezeiza International Airport", City: "Buenos Aires", Country: "Argentina", Region: "South America"},
	{Code: "SCL", Name: "Santiago International Airport", City: "Santiago", Country: "Chile", Region: "South America"},
	{Code: "LIM", Name: "Jorge Chávez International Airport", City: "Lima", Country: "Peru", Region: "South America"},
	{Code: "BOG", Name: "El Dorado International Airport", City: "Bogotá", Country: "Colombia", Region: "South America"},
	{Code: "UIO", Name: "Mariscal Sucre International Airport", City: "Quito", Country: "Ecuador", Region: "South America"},
	{Code: "CCS", Name: "Simón Bolívar International Airport", City: "Caracas", Country: "Venezuela", Region: "South America"},
}
