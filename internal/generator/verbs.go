package generator

// Verb is one regular verb entry: infinitive, gloss, conjugation stem and
// a usage example pair.
type Verb struct {
	Infinitive  string
	Translation string
	Stem        string
	Example     string
	ExampleEn   string
	Synonyms    []string
}

// Card expands the verb into a flashcard with its full regular paradigm.
func (v Verb) Card(class VerbClass) Card {
	return Card{
		Term:         v.Infinitive,
		Translation:  v.Translation,
		PartOfSpeech: "verb",
		Example:      v.Example,
		ExampleEn:    v.ExampleEn,
		Synonyms:     v.Synonyms,
		Conjugations: Conjugations(class, v.Stem),
	}
}

var arVerbs = []Verb{
	{"hablar", "to speak", "habl", "Hablo español y portugués.", "I speak Spanish and Portuguese.", []string{"conversar", "charlar"}},
	{"caminar", "to walk", "camin", "Camino al trabajo todos los días.", "I walk to work every day.", []string{"andar"}},
	{"estudiar", "to study", "estudi", "Estudio para el examen de mañana.", "I study for tomorrow's exam.", nil},
	{"trabajar", "to work", "trabaj", "Trabajo en una oficina.", "I work in an office.", []string{"laborar"}},
	{"cocinar", "to cook", "cocin", "Cocino la cena para mi familia.", "I cook dinner for my family.", []string{"preparar"}},
	{"comprar", "to buy", "compr", "Compro frutas en el mercado.", "I buy fruits at the market.", []string{"adquirir"}},
	{"bailar", "to dance", "bail", "Bailo salsa los fines de semana.", "I dance salsa on weekends.", nil},
	{"cantar", "to sing", "cant", "Canta muy bien.", "She sings very well.", []string{"entonar"}},
	{"nadar", "to swim", "nad", "Nado en la piscina cada mañana.", "I swim in the pool every morning.", nil},
	{"viajar", "to travel", "viaj", "Viajo a México el próximo mes.", "I travel to Mexico next month.", nil},
	{"escuchar", "to listen", "escuch", "Escucho música mientras trabajo.", "I listen to music while I work.", []string{"oír"}},
	{"buscar", "to look for", "busc", "Busco mis llaves en la casa.", "I look for my keys in the house.", nil},
	{"llamar", "to call", "llam", "Llamo a mi madre todos los días.", "I call my mother every day.", []string{"telefonear"}},
	{"llevar", "to carry / to wear", "llev", "Llevo una mochila al colegio.", "I carry a backpack to school.", []string{"portar"}},
	{"pagar", "to pay", "pag", "Pago la cuenta con tarjeta.", "I pay the bill with a card.", []string{"abonar"}},
	{"esperar", "to wait / to hope", "esper", "Espero el autobús en la esquina.", "I wait for the bus at the corner.", []string{"aguardar"}},
	{"entrar", "to enter", "entr", "Entro a la oficina a las ocho.", "I enter the office at eight.", nil},
	{"llegar", "to arrive", "lleg", "Llego a casa a las seis.", "I arrive home at six.", nil},
	{"preguntar", "to ask", "pregunt", "Pregunto la dirección a un policía.", "I ask a police officer for directions.", []string{"interrogar"}},
	{"contestar", "to answer", "contest", "Contesto todas las preguntas.", "I answer all the questions.", []string{"responder"}},
	{"limpiar", "to clean", "limpi", "Limpio la casa los sábados.", "I clean the house on Saturdays.", []string{"asear"}},
	{"necesitar", "to need", "necesit", "Necesito más tiempo.", "I need more time.", []string{"requerir", "precisar"}},
	{"enseñar", "to teach", "enseñ", "Enseño matemáticas en la universidad.", "I teach mathematics at the university.", []string{"instruir"}},
	{"descansar", "to rest", "descans", "Descanso después del almuerzo.", "I rest after lunch.", []string{"reposar"}},
	{"amar", "to love", "am", "Amo a mi familia.", "I love my family.", []string{"querer"}},
	{"ayudar", "to help", "ayud", "Ayudo a mis vecinos con las compras.", "I help my neighbors with shopping.", []string{"asistir", "auxiliar"}},
	{"terminar", "to finish", "termin", "Termino el trabajo a las cinco.", "I finish work at five.", []string{"acabar", "finalizar"}},
	{"cenar", "to have dinner", "cen", "Ceno a las nueve de la noche.", "I have dinner at nine at night.", nil},
	{"desayunar", "to have breakfast", "desayun", "Desayuno a las siete de la mañana.", "I have breakfast at seven in the morning.", nil},
	{"dibujar", "to draw", "dibuj", "Dibujo paisajes en mi tiempo libre.", "I draw landscapes in my free time.", []string{"trazar"}},
	{"ganar", "to win / to earn", "gan", "Gano un buen sueldo.", "I earn a good salary.", []string{"obtener"}},
	{"guardar", "to keep / to save", "guard", "Guardo los documentos en un cajón.", "I keep the documents in a drawer.", []string{"conservar"}},
	{"mejorar", "to improve", "mejor", "Mejoro mi español cada día.", "I improve my Spanish every day.", []string{"perfeccionar"}},
	{"olvidar", "to forget", "olvid", "Olvido siempre las llaves.", "I always forget my keys.", nil},
	{"usar", "to use", "us", "Uso el ordenador para trabajar.", "I use the computer to work.", []string{"utilizar", "emplear"}},
}

var erVerbs = []Verb{
	{"comer", "to eat", "com", "Como una ensalada para almorzar.", "I eat a salad for lunch.", []string{"alimentarse"}},
	{"beber", "to drink", "beb", "Bebo mucha agua durante el día.", "I drink a lot of water during the day.", []string{"tomar"}},
	{"leer", "to read", "le", "Leo un libro antes de dormir.", "I read a book before sleeping.", nil},
	{"aprender", "to learn", "aprend", "Aprendo italiano en una academia.", "I learn Italian at an academy.", nil},
	{"comprender", "to understand", "comprend", "Comprendo la lección perfectamente.", "I understand the lesson perfectly.", []string{"entender"}},
	{"correr", "to run", "corr", "Corro cinco kilómetros cada mañana.", "I run five kilometers every morning.", nil},
	{"vender", "to sell", "vend", "Vendo ropa en mi tienda.", "I sell clothes in my store.", nil},
	{"responder", "to respond", "respond", "Respondo a los correos electrónicos.", "I respond to emails.", []string{"contestar"}},
	{"creer", "to believe", "cre", "Creo que tiene razón.", "I believe she is right.", nil},
	{"meter", "to put in", "met", "Meto la ropa en la lavadora.", "I put the clothes in the washing machine.", []string{"introducir"}},
	{"deber", "to owe / must", "deb", "Debo estudiar para el examen.", "I must study for the exam.", nil},
	{"prometer", "to promise", "promet", "Prometo llegar a tiempo.", "I promise to arrive on time.", nil},
	{"barrer", "to sweep", "barr", "Barro el piso de la cocina.", "I sweep the kitchen floor.", nil},
	{"toser", "to cough", "tos", "Toso mucho cuando tengo resfriado.", "I cough a lot when I have a cold.", nil},
	{"tejer", "to knit / to weave", "tej", "Mi abuela teje bufandas de lana.", "My grandmother knits wool scarves.", nil},
}

var irVerbs = []Verb{
	{"vivir", "to live", "viv", "Vivo en una ciudad grande.", "I live in a big city.", []string{"habitar", "residir"}},
	{"escribir", "to write", "escrib", "Escribo una carta a mi amigo.", "I write a letter to my friend.", []string{"redactar"}},
	{"abrir", "to open", "abr", "Abro la ventana por la mañana.", "I open the window in the morning.", nil},
	{"subir", "to go up / upload", "sub", "Subo las escaleras corriendo.", "I go up the stairs running.", []string{"ascender"}},
	{"recibir", "to receive", "recib", "Recibo muchos correos al día.", "I receive many emails per day.", []string{"obtener"}},
	{"decidir", "to decide", "decid", "Decido qué cocinar para la cena.", "I decide what to cook for dinner.", []string{"determinar", "resolver"}},
	{"compartir", "to share", "compart", "Comparto mi almuerzo con mi compañero.", "I share my lunch with my classmate.", nil},
	{"discutir", "to discuss / argue", "discut", "Discutimos los planes del proyecto.", "We discuss the project plans.", []string{"debatir"}},
	{"describir", "to describe", "describ", "Describo el paisaje en mi diario.", "I describe the landscape in my diary.", []string{"detallar"}},
	{"existir", "to exist", "exist", "No existen pruebas suficientes.", "There are no sufficient proofs.", nil},
	{"asistir", "to attend", "asist", "Asisto a clase todos los días.", "I attend class every day.", []string{"acudir"}},
	{"sufrir", "to suffer", "sufr", "Sufro de alergias en primavera.", "I suffer from allergies in spring.", []string{"padecer"}},
	{"permitir", "to allow", "permit", "No permito que hablen así.", "I don't allow them to speak like that.", []string{"autorizar", "dejar"}},
	{"insistir", "to insist", "insist", "Insisto en pagar la cuenta.", "I insist on paying the bill.", nil},
	{"consumir", "to consume", "consum", "Consumo productos locales.", "I consume local products.", []string{"gastar"}},
}

// regularVerbs generates the regular verb section with full paradigms for
// the three conjugation classes.
type regularVerbs struct{}

func init() {
	Register(regularVerbs{})
}

func (regularVerbs) Name() string {
	return "regular-verbs"
}

func (regularVerbs) Sections() ([]Section, error) {
	cards := make([]Card, 0, len(arVerbs)+len(erVerbs)+len(irVerbs))
	for _, v := range arVerbs {
		cards = append(cards, v.Card(ClassAR))
	}
	for _, v := range erVerbs {
		cards = append(cards, v.Card(ClassER))
	}
	for _, v := range irVerbs {
		cards = append(cards, v.Card(ClassIR))
	}
	return []Section{{Number: 4, Title: "Regular Verbs", Cards: cards}}, nil
}
