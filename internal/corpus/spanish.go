package corpus

// spanish is the Spanish corpus. The first ten entries are the curated
// bootstrap set (five verbs, then five nouns); the rest follow general
// frequency order.
var spanish = []Word{
	// Bootstrap verbs.
	{Word: "ser", Lemma: "ser", Translation: "to be", PartOfSpeech: "verb", Rank: 1},
	{Word: "tener", Lemma: "tener", Translation: "to have", PartOfSpeech: "verb", Rank: 2},
	{Word: "querer", Lemma: "querer", Translation: "to want", PartOfSpeech: "verb", Rank: 3},
	{Word: "ir", Lemma: "ir", Translation: "to go", PartOfSpeech: "verb", Rank: 4},
	{Word: "ver", Lemma: "ver", Translation: "to see", PartOfSpeech: "verb", Rank: 5},
	// Bootstrap nouns.
	{Word: "casa", Lemma: "casa", Translation: "house", PartOfSpeech: "noun", Rank: 6},
	{Word: "día", Lemma: "día", Translation: "day", PartOfSpeech: "noun", Rank: 7},
	{Word: "agua", Lemma: "agua", Translation: "water", PartOfSpeech: "noun", Rank: 8},
	{Word: "amigo", Lemma: "amigo", Translation: "friend", PartOfSpeech: "noun", Rank: 9},
	{Word: "tiempo", Lemma: "tiempo", Translation: "time", PartOfSpeech: "noun", Rank: 10},
	// Open frequency corpus.
	{Word: "hacer", Lemma: "hacer", Translation: "to do, to make", PartOfSpeech: "verb", Rank: 11},
	{Word: "decir", Lemma: "decir", Translation: "to say", PartOfSpeech: "verb", Rank: 12},
	{Word: "poder", Lemma: "poder", Translation: "to be able", PartOfSpeech: "verb", Rank: 13},
	{Word: "saber", Lemma: "saber", Translation: "to know", PartOfSpeech: "verb", Rank: 14},
	{Word: "comer", Lemma: "comer", Translation: "to eat", PartOfSpeech: "verb", Rank: 15},
	{Word: "hombre", Lemma: "hombre", Translation: "man", PartOfSpeech: "noun", Rank: 16},
	{Word: "mujer", Lemma: "mujer", Translation: "woman", PartOfSpeech: "noun", Rank: 17},
	{Word: "niño", Lemma: "niño", Translation: "child", PartOfSpeech: "noun", Rank: 18},
	{Word: "vida", Lemma: "vida", Translation: "life", PartOfSpeech: "noun", Rank: 19},
	{Word: "mundo", Lemma: "mundo", Translation: "world", PartOfSpeech: "noun", Rank: 20},
	{Word: "hablar", Lemma: "hablar", Translation: "to speak", PartOfSpeech: "verb", Rank: 21},
	{Word: "vivir", Lemma: "vivir", Translation: "to live", PartOfSpeech: "verb", Rank: 22},
	{Word: "gato", Lemma: "gato", Translation: "cat", PartOfSpeech: "noun", Rank: 23},
	{Word: "perro", Lemma: "perro", Translation: "dog", PartOfSpeech: "noun", Rank: 24},
	{Word: "ciudad", Lemma: "ciudad", Translation: "city", PartOfSpeech: "noun", Rank: 25},
	{Word: "noche", Lemma: "noche", Translation: "night", PartOfSpeech: "noun", Rank: 26},
	{Word: "grande", Lemma: "grande", Translation: "big", PartOfSpeech: "adjective", Rank: 27},
	{Word: "pequeño", Lemma: "pequeño", Translation: "small", PartOfSpeech: "adjective", Rank: 28},
	{Word: "bueno", Lemma: "bueno", Translation: "good", PartOfSpeech: "adjective", Rank: 29},
	{Word: "nuevo", Lemma: "nuevo", Translation: "new", PartOfSpeech: "adjective", Rank: 30},
	{Word: "comida", Lemma: "comida", Translation: "food", PartOfSpeech: "noun", Rank: 31},
	{Word: "libro", Lemma: "libro", Translation: "book", PartOfSpeech: "noun", Rank: 32},
	{Word: "trabajar", Lemma: "trabajar", Translation: "to work", PartOfSpeech: "verb", Rank: 33},
	{Word: "escuela", Lemma: "escuela", Translation: "school", PartOfSpeech: "noun", Rank: 34},
	{Word: "familia", Lemma: "familia", Translation: "family", PartOfSpeech: "noun", Rank: 35},
	{Word: "camino", Lemma: "camino", Translation: "road, path", PartOfSpeech: "noun", Rank: 36},
	{Word: "sol", Lemma: "sol", Translation: "sun", PartOfSpeech: "noun", Rank: 37},
	{Word: "luna", Lemma: "luna", Translation: "moon", PartOfSpeech: "noun", Rank: 38},
	{Word: "mar", Lemma: "mar", Translation: "sea", PartOfSpeech: "noun", Rank: 39},
	{Word: "árbol", Lemma: "árbol", Translation: "tree", PartOfSpeech: "noun", Rank: 40},
	{Word: "correr", Lemma: "correr", Translation: "to run", PartOfSpeech: "verb", Rank: 41},
	{Word: "dormir", Lemma: "dormir", Translation: "to sleep", PartOfSpeech: "verb", Rank: 42},
	{Word: "jugar", Lemma: "jugar", Translation: "to play", PartOfSpeech: "verb", Rank: 43},
	{Word: "leer", Lemma: "leer", Translation: "to read", PartOfSpeech: "verb", Rank: 44},
	{Word: "escribir", Lemma: "escribir", Translation: "to write", PartOfSpeech: "verb", Rank: 45},
	{Word: "feliz", Lemma: "feliz", Translation: "happy", PartOfSpeech: "adjective", Rank: 46},
	{Word: "triste", Lemma: "triste", Translation: "sad", PartOfSpeech: "adjective", Rank: 47},
	{Word: "rojo", Lemma: "rojo", Translation: "red", PartOfSpeech: "adjective", Rank: 48},
	{Word: "azul", Lemma: "azul", Translation: "blue", PartOfSpeech: "adjective", Rank: 49},
	{Word: "verde", Lemma: "verde", Translation: "green", PartOfSpeech: "adjective", Rank: 50},
	{Word: "música", Lemma: "música", Translation: "music", PartOfSpeech: "noun", Rank: 51},
	{Word: "puerta", Lemma: "puerta", Translation: "door", PartOfSpeech: "noun", Rank: 52},
	{Word: "ventana", Lemma: "ventana", Translation: "window", PartOfSpeech: "noun", Rank: 53},
	{Word: "mesa", Lemma: "mesa", Translation: "table", PartOfSpeech: "noun", Rank: 54},
	{Word: "flor", Lemma: "flor", Translation: "flower", PartOfSpeech: "noun", Rank: 55},
	{Word: "lluvia", Lemma: "lluvia", Translation: "rain", PartOfSpeech: "noun", Rank: 56},
	{Word: "viento", Lemma: "viento", Translation: "wind", PartOfSpeech: "noun", Rank: 57},
	{Word: "fuego", Lemma: "fuego", Translation: "fire", PartOfSpeech: "noun", Rank: 58},
	{Word: "viajar", Lemma: "viajar", Translation: "to travel", PartOfSpeech: "verb", Rank: 59},
	{Word: "cantar", Lemma: "cantar", Translation: "to sing", PartOfSpeech: "verb", Rank: 60},
}
