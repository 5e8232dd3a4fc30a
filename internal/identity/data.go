package identity

var femaleFirstNames = []string{
	"Alice", "Amanda", "Ana", "Ana Clara", "Ana Júlia", "Beatriz", "Bianca",
	"Camila", "Carolina", "Cecília", "Clara", "Eduarda", "Elisa", "Fernanda",
	"Gabriela", "Giovanna", "Helena", "Isabela", "Isadora", "Júlia", "Larissa",
	"Laura", "Letícia", "Lívia", "Lorena", "Luana", "Luiza", "Manuela",
	"Maria", "Maria Eduarda", "Mariana", "Marina", "Natália", "Rafaela",
	"Rebeca", "Sabrina", "Sofia", "Valentina", "Vitória", "Yasmin",
}

var maleFirstNames = []string{
	"Arthur", "Benjamin", "Bernardo", "Bruno", "Caio", "Carlos Eduardo",
	"Daniel", "Davi", "Diego", "Eduardo", "Enzo", "Felipe", "Gabriel",
	"Guilherme", "Gustavo", "Heitor", "Henrique", "Igor", "João", "João Pedro",
	"Joaquim", "Leonardo", "Lucas", "Luiz Felipe", "Matheus", "Miguel",
	"Murilo", "Nicolas", "Otávio", "Pedro", "Pedro Henrique", "Rafael",
	"Renan", "Samuel", "Thiago", "Vicente", "Vinicius", "Vitor", "Yuri",
	"Theo",
}

var lastNames = []string{
	"Almeida", "Alves", "Araújo", "Barbosa", "Barros", "Cardoso", "Carvalho",
	"Castro", "Correia", "Costa", "Cunha", "Dias", "Duarte", "Farias",
	"Fernandes", "Ferreira", "Freitas", "Gomes", "Lima", "Lopes", "Martins",
	"Melo", "Mendes", "Monteiro", "Moraes", "Moreira", "Nascimento", "Nogueira",
	"Oliveira", "Pereira", "Pinto", "Porto", "Ramos", "Rezende", "Ribeiro",
	"Rocha", "Rodrigues", "Sales", "Santos", "Silva", "Souza", "Teixeira",
	"Vieira",
}

var femalePrefixes = []string{"Sra.", "Srta.", "Dra."}

var malePrefixes = []string{"Sr.", "Dr."}

var citySuffixes = []string{
	"do Sul", "do Norte", "de Minas", "do Campo", "Grande", "da Serra",
	"do Oeste", "de Goiás", "Paulista", "da Mata", "Alegre", "da Praia",
	"das Flores", "das Pedras", "dos Dourados", "do Amparo", "da Prata",
	"Verde",
}

var cityPrefixes = []string{"Vila", "Nova", "São", "Santa", "Porto"}

var stateAbbrs = []string{
	"AC", "AL", "AP", "AM", "BA", "CE", "DF", "ES", "GO", "MA", "MT", "MS",
	"MG", "PA", "PB", "PR", "PE", "PI", "RJ", "RN", "RS", "RO", "RR", "SC",
	"SP", "SE", "TO",
}

var companySuffixes = []string{"S/A", "S.A.", "Ltda.", "- ME", "- EI", "e Filhos"}

var freeEmailDomains = []string{
	"gmail.com", "hotmail.com", "yahoo.com.br", "uol.com.br", "bol.com.br",
	"ig.com.br", "outlook.com",
}
