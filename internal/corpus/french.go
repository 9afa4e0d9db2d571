package corpus

// french is the French corpus, same layout as the Spanish table.
var french = []Word{
	// Bootstrap verbs.
	{Word: "être", Lemma: "être", Translation: "to be", PartOfSpeech: "verb", Rank: 1},
	{Word: "avoir", Lemma: "avoir", Translation: "to have", PartOfSpeech: "verb", Rank: 2},
	{Word: "vouloir", Lemma: "vouloir", Translation: "to want", PartOfSpeech: "verb", Rank: 3},
	{Word: "aller", Lemma: "aller", Translation: "to go", PartOfSpeech: "verb", Rank: 4},
	{Word: "voir", Lemma: "voir", Translation: "to see", PartOfSpeech: "verb", Rank: 5},
	// Bootstrap nouns.
	{Word: "maison", Lemma: "maison", Translation: "house", PartOfSpeech: "noun", Rank: 6},
	{Word: "jour", Lemma: "jour", Translation: "day", PartOfSpeech: "noun", Rank: 7},
	{Word: "eau", Lemma: "eau", Translation: "water", PartOfSpeech: "noun", Rank: 8},
	{Word: "ami", Lemma: "ami", Translation: "friend", PartOfSpeech: "noun", Rank: 9},
	{Word: "temps", Lemma: "temps", Translation: "time", PartOfSpeech: "noun", Rank: 10},
	// Open frequency corpus.
	{Word: "faire", Lemma: "faire", Translation: "to do, to make", PartOfSpeech: "verb", Rank: 11},
	{Word: "dire", Lemma: "dire", Translation: "to say", PartOfSpeech: "verb", Rank: 12},
	{Word: "pouvoir", Lemma: "pouvoir", Translation: "to be able", PartOfSpeech: "verb", Rank: 13},
	{Word: "savoir", Lemma: "savoir", Translation: "to know", PartOfSpeech: "verb", Rank: 14},
	{Word: "manger", Lemma: "manger", Translation: "to eat", PartOfSpeech: "verb", Rank: 15},
	{Word: "homme", Lemma: "homme", Translation: "man", PartOfSpeech: "noun", Rank: 16},
	{Word: "femme", Lemma: "femme", Translation: "woman", PartOfSpeech: "noun", Rank: 17},
	{Word: "enfant", Lemma: "enfant", Translation: "child", PartOfSpeech: "noun", Rank: 18},
	{Word: "vie", Lemma: "vie", Translation: "life", PartOfSpeech: "noun", Rank: 19},
	{Word: "monde", Lemma: "monde", Translation: "world", PartOfSpeech: "noun", Rank: 20},
	{Word: "parler", Lemma: "parler", Translation: "to speak", PartOfSpeech: "verb", Rank: 21},
	{Word: "vivre", Lemma: "vivre", Translation: "to live", PartOfSpeech: "verb", Rank: 22},
	{Word: "chat", Lemma: "chat", Translation: "cat", PartOfSpeech: "noun", Rank: 23},
	{Word: "chien", Lemma: "chien", Translation: "dog", PartOfSpeech: "noun", Rank: 24},
	{Word: "ville", Lemma: "ville", Translation: "city", PartOfSpeech: "noun", Rank: 25},
	{Word: "nuit", Lemma: "nuit", Translation: "night", PartOfSpeech: "noun", Rank: 26},
	{Word: "grand", Lemma: "grand", Translation: "big", PartOfSpeech: "adjective", Rank: 27},
	{Word: "petit", Lemma: "petit", Translation: "small", PartOfSpeech: "adjective", Rank: 28},
	{Word: "bon", Lemma: "bon", Translation: "good", PartOfSpeech: "adjective", Rank: 29},
	{Word: "nouveau", Lemma: "nouveau", Translation: "new", PartOfSpeech: "adjective", Rank: 30},
	{Word: "nourriture", Lemma: "nourriture", Translation: "food", PartOfSpeech: "noun", Rank: 31},
	{Word: "livre", Lemma: "livre", Translation: "book", PartOfSpeech: "noun", Rank: 32},
	{Word: "travailler", Lemma: "travailler", Translation: "to work", PartOfSpeech: "verb", Rank: 33},
	{Word: "école", Lemma: "école", Translation: "school", PartOfSpeech: "noun", Rank: 34},
	{Word: "famille", Lemma: "famille", Translation: "family", PartOfSpeech: "noun", Rank: 35},
	{Word: "chemin", Lemma: "chemin", Translation: "road, path", PartOfSpeech: "noun", Rank: 36},
	{Word: "soleil", Lemma: "soleil", Translation: "sun", PartOfSpeech: "noun", Rank: 37},
	{Word: "lune", Lemma: "lune", Translation: "moon", PartOfSpeech: "noun", Rank: 38},
	{Word: "mer", Lemma: "mer", Translation: "sea", PartOfSpeech: "noun", Rank: 39},
	{Word: "arbre", Lemma: "arbre", Translation: "tree", PartOfSpeech: "noun", Rank: 40},
	{Word: "courir", Lemma: "courir", Translation: "to run", PartOfSpeech: "verb", Rank: 41},
	{Word: "dormir", Lemma: "dormir", Translation: "to sleep", PartOfSpeech: "verb", Rank: 42},
	{Word: "jouer", Lemma: "jouer", Translation: "to play", PartOfSpeech: "verb", Rank: 43},
	{Word: "lire", Lemma: "lire", Translation: "to read", PartOfSpeech: "verb", Rank: 44},
	{Word: "écrire", Lemma: "écrire", Translation: "to write", PartOfSpeech: "verb", Rank: 45},
	{Word: "heureux", Lemma: "heureux", Translation: "happy", PartOfSpeech: "adjective", Rank: 46},
	{Word: "triste", Lemma: "triste", Translation: "sad", PartOfSpeech: "adjective", Rank: 47},
	{Word: "rouge", Lemma: "rouge", Translation: "red", PartOfSpeech: "adjective", Rank: 48},
	{Word: "bleu", Lemma: "bleu", Translation: "blue", PartOfSpeech: "adjective", Rank: 49},
	{Word: "vert", Lemma: "vert", Translation: "green", PartOfSpeech: "adjective", Rank: 50},
	{Word: "musique", Lemma: "musique", Translation: "music", PartOfSpeech: "noun", Rank: 51},
	{Word: "porte", Lemma: "porte", Translation: "door", PartOfSpeech: "noun", Rank: 52},
	{Word: "fenêtre", Lemma: "fenêtre", Translation: "window", PartOfSpeech: "noun", Rank: 53},
	{Word: "table", Lemma: "table", Translation: "table", PartOfSpeech: "noun", Rank: 54},
	{Word: "fleur", Lemma: "fleur", Translation: "flower", PartOfSpeech: "noun", Rank: 55},
	{Word: "pluie", Lemma: "pluie", Translation: "rain", PartOfSpeech: "noun", Rank: 56},
	{Word: "vent", Lemma: "vent", Translation: "wind", PartOfSpeech: "noun", Rank: 57},
	{Word: "feu", Lemma: "feu", Translation: "fire", PartOfSpeech: "noun", Rank: 58},
	{Word: "voyager", Lemma: "voyager", Translation: "to travel", PartOfSpeech: "verb", Rank: 59},
	{Word: "chanter", Lemma: "chanter", Translation: "to sing", PartOfSpeech: "verb", Rank: 60},
}
