package engine

// SampleRecords returns the data the editor starts with.
// A fresh slice is built on every call so callers may modify it freely.
func SampleRecords() []BirthdayRecord {
	return []BirthdayRecord{
		{Name: "Tyrion Lannister", Birthday: "12/02/1978"},
		{Name: "Cersei Lannister", Birthday: "11/30/1975"},
		{Name: "Daenerys Targaryen", Birthday: "11/24/1991"},
		{Name: "Arya Stark", Birthday: "11/25/1996"},
		{Name: "Jon Snow", Birthday: "12/03/1989"},
		{Name: "Sansa Stark", Birthday: "08/15/1992"},
		{Name: "Jorah Mormont", Birthday: "12/16/1968"},
		{Name: "Jaime Lannister", Birthday: "12/06/1975"},
		{Name: "Sandor Clegane", Birthday: "11/07/1969"},
		{Name: "Tywin Lannister", Birthday: "10/12/1951"},
		{Name: "Theon Greyjoy", Birthday: "12/31/1989"},
		{Name: "Samwell Tarly", Birthday: "12/07/1990"},
		{Name: "Joffrey Baratheon", Birthday: "06/12/1992"},
		{Name: "Catelyn Stark", Birthday: "12/03/1962"},
		{Name: "Bran Stark", Birthday: "12/02/1995"},
		{Name: "Petyr Baelish", Birthday: "11/20/1974"},
		{Name: "Robb Stark", Birthday: "11/28/1986"},
		{Name: "Brienne of Tarth", Birthday: "11/27/1985"},
		{Name: "Margaery Tyrell", Birthday: "12/02/1989"},
		{Name: "Stannis Baratheon", Birthday: "09/14/1971"},
		{Name: "Davos Seaworth", Birthday: "02/13/1973"},
		{Name: "Tormund Giantsbane", Birthday: "12/14/1974"},
		{Name: "Jeor Mormont", Birthday: "11/01/1955"},
		{Name: "Eddard Stark", Birthday: "12/02/1963"},
		{Name: "Khal Drogo", Birthday: "12/02/1980"},
		{Name: "Ramsay Bolton", Birthday: "12/05/1976"},
		{Name: "Robert Baratheon", Birthday: "12/02/1965"},
		{Name: "Daario Naharis", Birthday: "12/02/1985"},
		{Name: "Viserys Targaryen", Birthday: "12/06/1984"},
		{Name: "Grey Worm", Birthday: "1988-04-22"},
		{Name: "Missandei", Birthday: "1989-09-10"},
		{Name: "Gendry Waters", Birthday: "1993-06-29"},
	}
}
