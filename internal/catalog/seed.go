package catalog

// seedRecipes is the reference catalogue shipped with the service.
var seedRecipes = []Recipe{
	{
		ID:       "1",
		Name:     "Feijoada Leve",
		Category: "Brasileiro",
		Icon:     "🍲",
		Calories: 650,
		Ingredients: []Ingredient{
			{Name: "Feijão Preto", Quantity: 200, Unit: "g"},
			{Name: "Carne Seca", Quantity: 100, Unit: "g"},
			{Name: "Couve", Quantity: 50, Unit: "g"},
		},
		Instructions: "Cozinhe o feijão com a carne dessalgada. Refogue a couve.",
	},
	{
		ID:       "2",
		Name:     "Moqueca de Banana da Terra",
		Category: "Brasileiro",
		Icon:     "🍌",
		Calories: 500,
		Ingredients: []Ingredient{
			{Name: "Banana da Terra", Quantity: 2, Unit: "un"},
			{Name: "Leite de Coco", Quantity: 200, Unit: "ml"},
			{Name: "Azeite de Dendê", Quantity: 20, Unit: "ml"},
		},
		Instructions: "Refogue os temperos, adicione a banana e o leite de coco, cozinhe até amaciar.",
	},
	{
		ID:       "3",
		Name:     "Vaca Atolada",
		Category: "Brasileiro",
		Icon:     "🐄",
		Calories: 700,
		Ingredients: []Ingredient{
			{Name: "Costela Bovina", Quantity: 200, Unit: "g"},
			{Name: "Mandioca", Quantity: 150, Unit: "g"},
			{Name: "Tomate", Quantity: 1, Unit: "un"},
		},
		Instructions: "Cozinhe a costela na pressão. Adicione a mandioca e cozinhe até ficar macia.",
	},
	{
		ID:       "4",
		Name:     "Pão de Queijo",
		Category: "Brasileiro",
		Icon:     "🧀",
		Calories: 150,
		Ingredients: []Ingredient{
			{Name: "Polvilho Doce", Quantity: 100, Unit: "g"},
			{Name: "Queijo Minas", Quantity: 50, Unit: "g"},
			{Name: "Ovo", Quantity: 1, Unit: "un"},
		},
		Instructions: "Misture todos os ingredientes, faça bolinhas e asse até dourar.",
	},
	{
		ID:       "21",
		Name:     "Galinhada",
		Category: "Brasileiro",
		Icon:     "🐔",
		Calories: 580,
		Ingredients: []Ingredient{
			{Name: "Frango em pedaços", Quantity: 200, Unit: "g"},
			{Name: "Arroz", Quantity: 100, Unit: "g"},
			{Name: "Açafrão", Quantity: 5, Unit: "g"},
		},
		Instructions: "Refogue o frango com temperos, adicione o arroz e açafrão, e cozinhe.",
	},
	{
		ID:       "35",
		Name:     "Escondidinho de Carne Seca",
		Category: "Brasileiro",
		Icon:     "🥔",
		Calories: 620,
		Ingredients: []Ingredient{
			{Name: "Mandioca", Quantity: 300, Unit: "g"},
			{Name: "Carne Seca Desfiada", Quantity: 150, Unit: "g"},
			{Name: "Queijo Coalho", Quantity: 50, Unit: "g"},
		},
		Instructions: "Faça um purê com a mandioca. Refogue a carne seca. Monte em camadas e gratine com o queijo.",
	},
	{
		ID:       "5",
		Name:     "Frango Grelhado com Batata Doce",
		Category: "Fitness",
		Icon:     "💪",
		Calories: 450,
		Ingredients: []Ingredient{
			{Name: "Filé de Frango", Quantity: 150, Unit: "g"},
			{Name: "Batata Doce", Quantity: 200, Unit: "g"},
			{Name: "Brócolis", Quantity: 100, Unit: "g"},
		},
		Instructions: "Grelhe o frango. Cozinhe a batata doce e o brócolis no vapor.",
	},
	{
		ID:       "6",
		Name:     "Omelete com Queijo e Tomate",
		Category: "Fitness",
		Icon:     "🥚",
		Calories: 350,
		Ingredients: []Ingredient{
			{Name: "Ovo", Quantity: 3, Unit: "un"},
			{Name: "Queijo Minas", Quantity: 50, Unit: "g"},
			{Name: "Tomate", Quantity: 1, Unit: "un"},
		},
		Instructions: "Bata os ovos, adicione o queijo e tomate picado, e cozinhe na frigideira.",
	},
	{
		ID:       "7",
		Name:     "Wrap de Alface com Carne Moída",
		Category: "Fitness",
		Icon:     "🥬",
		Calories: 400,
		Ingredients: []Ingredient{
			{Name: "Folhas de Alface Grandes", Quantity: 4, Unit: "un"},
			{Name: "Carne Moída (Patinho)", Quantity: 150, Unit: "g"},
			{Name: "Cenoura Ralada", Quantity: 50, Unit: "g"},
		},
		Instructions: "Refogue a carne moída com temperos. Sirva dentro das folhas de alface.",
	},
	{
		ID:       "8",
		Name:     "Crepioca com Cottage",
		Category: "Fitness",
		Icon:     "🥞",
		Calories: 380,
		Ingredients: []Ingredient{
			{Name: "Goma de Tapioca", Quantity: 3, Unit: "colheres de sopa"},
			{Name: "Ovo", Quantity: 1, Unit: "un"},
			{Name: "Queijo Cottage", Quantity: 50, Unit: "g"},
		},
		Instructions: "Misture a goma e o ovo, despeje na frigideira. Recheie com o cottage.",
	},
	{
		ID:       "22",
		Name:     "Salada de Quinoa com Abacate",
		Category: "Fitness",
		Icon:     "🥑",
		Calories: 420,
		Ingredients: []Ingredient{
			{Name: "Quinoa Cozida", Quantity: 100, Unit: "g"},
			{Name: "Abacate", Quantity: 0.5, Unit: "un"},
			{Name: "Tomate Cereja", Quantity: 50, Unit: "g"},
		},
		Instructions: "Misture a quinoa, o abacate em cubos e os tomates. Tempere com limão.",
	},
	{
		ID:       "36",
		Name:     "Shake de Proteína com Banana",
		Category: "Inovadora",
		Icon:     "🥤",
		Calories: 300,
		Ingredients: []Ingredient{
			{Name: "Whey Protein", Quantity: 30, Unit: "g"},
			{Name: "Banana Congelada", Quantity: 1, Unit: "un"},
			{Name: "Leite Desnatado", Quantity: 200, Unit: "ml"},
		},
		Instructions: "Bata todos os ingredientes no liquidificador até ficar homogêneo.",
	},
	{
		ID:       "9",
		Name:     "Salmão Grelhado com Aspargos",
		Category: "Mediterrânea",
		Icon:     "🐟",
		Calories: 520,
		Ingredients: []Ingredient{
			{Name: "Salmão", Quantity: 150, Unit: "g"},
			{Name: "Aspargos Frescos", Quantity: 100, Unit: "g"},
			{Name: "Azeite de Oliva", Quantity: 15, Unit: "ml"},
		},
		Instructions: "Tempere o salmão e os aspargos com azeite, sal e pimenta. Grelhe ou asse.",
	},
	{
		ID:       "10",
		Name:     "Salada Grega",
		Category: "Mediterrânea",
		Icon:     "🥗",
		Calories: 300,
		Ingredients: []Ingredient{
			{Name: "Pepino", Quantity: 1, Unit: "un"},
			{Name: "Tomate", Quantity: 2, Unit: "un"},
			{Name: "Queijo Feta", Quantity: 50, Unit: "g"},
		},
		Instructions: "Corte os vegetais, adicione o queijo e tempere com azeite e orégano.",
	},
	{
		ID:       "11",
		Name:     "Frango ao Limão e Ervas",
		Category: "Mediterrânea",
		Icon:     "🍋",
		Calories: 480,
		Ingredients: []Ingredient{
			{Name: "Filé de Frango", Quantity: 150, Unit: "g"},
			{Name: "Limão Siciliano", Quantity: 1, Unit: "un"},
			{Name: "Alecrim", Quantity: 1, Unit: "ramo"},
		},
		Instructions: "Tempere o frango com suco de limão, alecrim e sal. Grelhe ou asse.",
	},
	{
		ID:       "12",
		Name:     "Massa com Pesto e Tomate Cereja",
		Category: "Mediterrânea",
		Icon:     "🍝",
		Calories: 600,
		Ingredients: []Ingredient{
			{Name: "Massa Integral", Quantity: 100, Unit: "g"},
			{Name: "Molho Pesto", Quantity: 30, Unit: "g"},
			{Name: "Tomate Cereja", Quantity: 80, Unit: "g"},
		},
		Instructions: "Cozinhe a massa, misture com o pesto e os tomates cortados ao meio.",
	},
	{
		ID:       "23",
		Name:     "Sopa de Lentilha",
		Category: "Mediterrânea",
		Icon:     "🥣",
		Calories: 350,
		Ingredients: []Ingredient{
			{Name: "Lentilha", Quantity: 100, Unit: "g"},
			{Name: "Caldo de Legumes", Quantity: 500, Unit: "ml"},
			{Name: "Cenoura", Quantity: 1, Unit: "un"},
		},
		Instructions: "Cozinhe a lentilha com os legumes no caldo até ficarem macios.",
	},
	{
		ID:       "13",
		Name:     "Yakisoba de Carne",
		Category: "Asiático",
		Icon:     "🍜",
		Calories: 600,
		Ingredients: []Ingredient{
			{Name: "Macarrão para Yakisoba", Quantity: 150, Unit: "g"},
			{Name: "Carne em Tiras", Quantity: 100, Unit: "g"},
			{Name: "Mix de Legumes", Quantity: 150, Unit: "g"},
		},
		Instructions: "Frite a carne, adicione os legumes e o macarrão cozido com o molho.",
	},
	{
		ID:       "14",
		Name:     "Sushi (Combo 10 peças)",
		Category: "Asiático",
		Icon:     "🍣",
		Calories: 380,
		Ingredients: []Ingredient{
			{Name: "Arroz de Sushi", Quantity: 150, Unit: "g"},
			{Name: "Salmão", Quantity: 80, Unit: "g"},
			{Name: "Alga Nori", Quantity: 10, Unit: "g"},
		},
		Instructions: "Monte os sushis com os ingredientes.",
	},
	{
		ID:       "15",
		Name:     "Frango Xadrez",
		Category: "Asiático",
		Icon:     "🥡",
		Calories: 550,
		Ingredients: []Ingredient{
			{Name: "Frango em cubos", Quantity: 150, Unit: "g"},
			{Name: "Pimentão", Quantity: 1, Unit: "un"},
			{Name: "Amendoim", Quantity: 30, Unit: "g"},
		},
		Instructions: "Frite o frango, adicione os pimentões e finalize com o molho shoyu e amendoim.",
	},
	{
		ID:       "16",
		Name:     "Rolinho Primavera (2 un)",
		Category: "Asiático",
		Icon:     "🫔",
		Calories: 250,
		Ingredients: []Ingredient{
			{Name: "Massa para rolinho", Quantity: 2, Unit: "un"},
			{Name: "Repolho", Quantity: 50, Unit: "g"},
			{Name: "Carne moída", Quantity: 50, Unit: "g"},
		},
		Instructions: "Recheie a massa com o refogado de carne e repolho e frite.",
	},
	{
		ID:       "37",
		Name:     "Pad Thai",
		Category: "Asiático",
		Icon:     "🍤",
		Calories: 650,
		Ingredients: []Ingredient{
			{Name: "Talharim de Arroz", Quantity: 100, Unit: "g"},
			{Name: "Camarão", Quantity: 100, Unit: "g"},
			{Name: "Amendoim", Quantity: 20, Unit: "g"},
		},
		Instructions: "Salteie o camarão, adicione o macarrão cozido e o molho. Finalize com amendoim.",
	},
	{
		ID:       "17",
		Name:     "Strogonoff de Palmito",
		Category: "Vegana",
		Icon:     "🌴",
		Calories: 450,
		Ingredients: []Ingredient{
			{Name: "Palmito Pupunha", Quantity: 200, Unit: "g"},
			{Name: "Creme de Leite de Castanha", Quantity: 100, Unit: "g"},
			{Name: "Champignon", Quantity: 50, Unit: "g"},
		},
		Instructions: "Refogue o palmito e champignon, adicione o creme de castanha e temperos.",
	},
	{
		ID:       "18",
		Name:     "Bobó de Grão de Bico",
		Category: "Vegana",
		Icon:     "🥣",
		Calories: 520,
		Ingredients: []Ingredient{
			{Name: "Grão de Bico", Quantity: 150, Unit: "g"},
			{Name: "Mandioca", Quantity: 100, Unit: "g"},
			{Name: "Leite de Coco", Quantity: 100, Unit: "ml"},
		},
		Instructions: "Cozinhe o grão de bico. Bata a mandioca cozida com leite de coco para o creme. Misture.",
	},
	{
		ID:       "19",
		Name:     "Hambúrguer de Lentilha",
		Category: "Vegana",
		Icon:     "🍔",
		Calories: 480,
		Ingredients: []Ingredient{
			{Name: "Lentilha Cozida", Quantity: 150, Unit: "g"},
			{Name: "Farinha de Aveia", Quantity: 50, Unit: "g"},
			{Name: "Cebola", Quantity: 0.5, Unit: "un"},
		},
		Instructions: "Processe a lentilha com os temperos, molde o hambúrguer com a aveia e grelhe.",
	},
	{
		ID:       "20",
		Name:     "Tofu Grelhado com Legumes",
		Category: "Vegana",
		Icon:     "🥢",
		Calories: 400,
		Ingredients: []Ingredient{
			{Name: "Tofu Firme", Quantity: 150, Unit: "g"},
			{Name: "Brócolis", Quantity: 80, Unit: "g"},
			{Name: "Molho Shoyu", Quantity: 20, Unit: "ml"},
		},
		Instructions: "Grelhe o tofu fatiado com shoyu. Salteie os legumes.",
	},
	{
		ID:       "24",
		Name:     "Curry de Legumes",
		Category: "Vegana",
		Icon:     "🍛",
		Calories: 470,
		Ingredients: []Ingredient{
			{Name: "Mix de Legumes", Quantity: 200, Unit: "g"},
			{Name: "Leite de Coco", Quantity: 150, Unit: "ml"},
			{Name: "Pó de Curry", Quantity: 10, Unit: "g"},
		},
		Instructions: "Refogue os legumes, adicione o curry e o leite de coco, e cozinhe.",
	},
	{
		ID:       "38",
		Name:     "Macarrão de Abobrinha ao Pesto",
		Category: "Vegana",
		Icon:     "🥒",
		Calories: 350,
		Ingredients: []Ingredient{
			{Name: "Abobrinha", Quantity: 2, Unit: "un"},
			{Name: "Molho Pesto Vegano", Quantity: 50, Unit: "g"},
			{Name: "Nozes", Quantity: 20, Unit: "g"},
		},
		Instructions: "Faça espirais de abobrinha para o 'macarrão'. Misture com o pesto e salpique nozes.",
	},
	{
		ID:       "25",
		Name:     "Lasanha à Bolonhesa",
		Category: "Italiana",
		Icon:     "🍝",
		Calories: 700,
		Ingredients: []Ingredient{
			{Name: "Massa de Lasanha", Quantity: 100, Unit: "g"},
			{Name: "Carne Moída", Quantity: 150, Unit: "g"},
			{Name: "Molho de Tomate", Quantity: 200, Unit: "ml"},
		},
		Instructions: "Monte camadas de massa, molho bolonhesa e queijo. Asse.",
	},
	{
		ID:       "26",
		Name:     "Risoto de Cogumelos",
		Category: "Italiana",
		Icon:     "🍄",
		Calories: 550,
		Ingredients: []Ingredient{
			{Name: "Arroz Arbóreo", Quantity: 100, Unit: "g"},
			{Name: "Cogumelo Funghi", Quantity: 50, Unit: "g"},
			{Name: "Vinho Branco", Quantity: 50, Unit: "ml"},
		},
		Instructions: "Refogue o arroz, adicione o vinho, e vá adicionando caldo aos poucos. Junte os cogumelos.",
	},
	{
		ID:       "27",
		Name:     "Bruschetta de Tomate",
		Category: "Italiana",
		Icon:     "🍅",
		Calories: 250,
		Ingredients: []Ingredient{
			{Name: "Pão Italiano", Quantity: 2, Unit: "fatias"},
			{Name: "Tomate", Quantity: 1, Unit: "un"},
			{Name: "Manjericão", Quantity: 5, Unit: "g"},
		},
		Instructions: "Torre o pão, cubra com tomate picado, manjericão e azeite.",
	},
	{
		ID:       "28",
		Name:     "Pizza Margherita",
		Category: "Italiana",
		Icon:     "🍕",
		Calories: 800,
		Ingredients: []Ingredient{
			{Name: "Massa de Pizza", Quantity: 1, Unit: "un"},
			{Name: "Molho de Tomate", Quantity: 100, Unit: "ml"},
			{Name: "Muçarela", Quantity: 150, Unit: "g"},
		},
		Instructions: "Abra a massa, espalhe o molho, cubra com queijo e manjericão. Asse.",
	},
	{
		ID:       "29",
		Name:     "Polenta com Ragu",
		Category: "Italiana",
		Icon:     "🌽",
		Calories: 600,
		Ingredients: []Ingredient{
			{Name: "Fubá para Polenta", Quantity: 100, Unit: "g"},
			{Name: "Linguiça Toscana", Quantity: 100, Unit: "g"},
			{Name: "Molho de Tomate", Quantity: 150, Unit: "ml"},
		},
		Instructions: "Prepare a polenta. Faça um ragu com a linguiça e o molho. Sirva por cima.",
	},
	{
		ID:       "30",
		Name:     "Ratatouille",
		Category: "Francesa",
		Icon:     "🍆",
		Calories: 300,
		Ingredients: []Ingredient{
			{Name: "Berinjela", Quantity: 1, Unit: "un"},
			{Name: "Abobrinha", Quantity: 1, Unit: "un"},
			{Name: "Pimentão", Quantity: 1, Unit: "un"},
		},
		Instructions: "Fatie os legumes e monte em camadas com molho de tomate. Asse lentamente.",
	},
	{
		ID:       "31",
		Name:     "Boeuf Bourguignon",
		Category: "Francesa",
		Icon:     "🍷",
		Calories: 600,
		Ingredients: []Ingredient{
			{Name: "Carne em cubos", Quantity: 200, Unit: "g"},
			{Name: "Vinho Tinto", Quantity: 150, Unit: "ml"},
			{Name: "Cebola", Quantity: 1, Unit: "un"},
		},
		Instructions: "Marine a carne no vinho. Cozinhe lentamente com legumes até ficar macia.",
	},
	{
		ID:       "32",
		Name:     "Sopa de Cebola",
		Category: "Francesa",
		Icon:     "🧅",
		Calories: 400,
		Ingredients: []Ingredient{
			{Name: "Cebola", Quantity: 3, Unit: "un"},
			{Name: "Caldo de Carne", Quantity: 500, Unit: "ml"},
			{Name: "Queijo Gruyère", Quantity: 50, Unit: "g"},
		},
		Instructions: "Caramelize as cebolas, adicione o caldo e cozinhe. Sirva com pão e queijo gratinado.",
	},
	{
		ID:       "33",
		Name:     "Quiche Lorraine",
		Category: "Francesa",
		Icon:     "🥧",
		Calories: 500,
		Ingredients: []Ingredient{
			{Name: "Massa de Torta", Quantity: 1, Unit: "un"},
			{Name: "Bacon", Quantity: 100, Unit: "g"},
			{Name: "Creme de Leite", Quantity: 200, Unit: "ml"},
		},
		Instructions: "Forre uma forma com a massa, recheie com bacon, ovos e creme. Asse.",
	},
	{
		ID:       "34",
		Name:     "Croque Monsieur",
		Category: "Francesa",
		Icon:     "🥪",
		Calories: 550,
		Ingredients: []Ingredient{
			{Name: "Pão de Forma", Quantity: 2, Unit: "fatias"},
			{Name: "Presunto", Quantity: 50, Unit: "g"},
			{Name: "Queijo Gruyère", Quantity: 50, Unit: "g"},
		},
		Instructions: "Monte um sanduíche com presunto e queijo, cubra com molho bechamel e mais queijo, e gratine.",
	},
	{
		ID:       "39",
		Name:     "Kibe Assado",
		Category: "Árabe",
		Icon:     "🧆",
		Calories: 450,
		Ingredients: []Ingredient{
			{Name: "Trigo para Kibe", Quantity: 100, Unit: "g"},
			{Name: "Carne Moída", Quantity: 150, Unit: "g"},
			{Name: "Hortelã", Quantity: 10, Unit: "g"},
		},
		Instructions: "Hidrate o trigo, misture com a carne moída e hortelã. Asse até dourar.",
	},
	{
		ID:       "40",
		Name:     "Esfiha Aberta de Carne",
		Category: "Árabe",
		Icon:     "🍕",
		Calories: 350,
		Ingredients: []Ingredient{
			{Name: "Massa de Esfiha", Quantity: 1, Unit: "un"},
			{Name: "Carne Moída", Quantity: 80, Unit: "g"},
			{Name: "Tomate", Quantity: 0.5, Unit: "un"},
		},
		Instructions: "Abra a massa, cubra com a carne temperada e asse em forno alto.",
	},
	{
		ID:       "41",
		Name:     "Tabule",
		Category: "Árabe",
		Icon:     "🌿",
		Calories: 250,
		Ingredients: []Ingredient{
			{Name: "Trigo para Kibe", Quantity: 50, Unit: "g"},
			{Name: "Salsinha", Quantity: 30, Unit: "g"},
			{Name: "Tomate", Quantity: 1, Unit: "un"},
		},
		Instructions: "Hidrate o trigo e misture com muita salsinha, tomate, cebola e pepino picados. Tempere.",
	},
	{
		ID:       "42",
		Name:     "Homus com Pão Sírio",
		Category: "Árabe",
		Icon:     "🫓",
		Calories: 400,
		Ingredients: []Ingredient{
			{Name: "Grão de Bico Cozido", Quantity: 150, Unit: "g"},
			{Name: "Tahine", Quantity: 30, Unit: "g"},
			{Name: "Pão Sírio", Quantity: 1, Unit: "un"},
		},
		Instructions: "Bata o grão de bico com tahine, limão e alho. Sirva com o pão.",
	},
	{
		ID:       "43",
		Name:     "Hambúrguer Caseiro na Grelha",
		Category: "Fast Food",
		Icon:     "🍔",
		Calories: 600,
		Ingredients: []Ingredient{
			{Name: "Pão de Hambúrguer Integral", Quantity: 1, Unit: "un"},
			{Name: "Carne Moída (Patinho)", Quantity: 150, Unit: "g"},
			{Name: "Alface e Tomate", Quantity: 1, Unit: "a gosto"},
		},
		Instructions: "Molde e grelhe o hambúrguer. Monte o sanduíche com salada.",
	},
	{
		ID:       "44",
		Name:     "Pizza de Frigideira",
		Category: "Fast Food",
		Icon:     "🍕",
		Calories: 550,
		Ingredients: []Ingredient{
			{Name: "Massa de Rap10", Quantity: 1, Unit: "un"},
			{Name: "Molho de Tomate", Quantity: 50, Unit: "ml"},
			{Name: "Queijo Muçarela", Quantity: 80, Unit: "g"},
		},
		Instructions: "Aqueça a massa na frigideira, adicione molho e queijo, tampe para derreter.",
	},
	{
		ID:       "45",
		Name:     "Batata Rústica Assada",
		Category: "Fast Food",
		Icon:     "🍟",
		Calories: 350,
		Ingredients: []Ingredient{
			{Name: "Batata Inglesa", Quantity: 200, Unit: "g"},
			{Name: "Azeite", Quantity: 15, Unit: "ml"},
			{Name: "Páprica", Quantity: 5, Unit: "g"},
		},
		Instructions: "Corte as batatas em gomos, tempere com azeite e páprica, e asse até dourar.",
	},
	{
		ID:       "46",
		Name:     "Tacos de Frango",
		Category: "Fast Food",
		Icon:     "🌮",
		Calories: 480,
		Ingredients: []Ingredient{
			{Name: "Massa de Taco", Quantity: 2, Unit: "un"},
			{Name: "Frango Desfiado", Quantity: 100, Unit: "g"},
			{Name: "Abacate", Quantity: 50, Unit: "g"},
		},
		Instructions: "Aqueça as massas de taco. Recheie com frango e guacamole (abacate amassado).",
	},
	{
		ID:       "47",
		Name:     "Mousse de Whey com Morango",
		Category: "Inovadora",
		Icon:     "🍓",
		Calories: 250,
		Ingredients: []Ingredient{
			{Name: "Whey Protein Baunilha", Quantity: 30, Unit: "g"},
			{Name: "Morangos Congelados", Quantity: 100, Unit: "g"},
			{Name: "Iogurte Grego", Quantity: 50, Unit: "g"},
		},
		Instructions: "Bata todos os ingredientes no processador até obter uma consistência de mousse.",
	},
	{
		ID:       "48",
		Name:     "Panqueca de Whey e Aveia",
		Category: "Inovadora",
		Icon:     "🥞",
		Calories: 350,
		Ingredients: []Ingredient{
			{Name: "Whey Protein Chocolate", Quantity: 30, Unit: "g"},
			{Name: "Farinha de Aveia", Quantity: 50, Unit: "g"},
			{Name: "Ovo", Quantity: 1, Unit: "un"},
		},
		Instructions: "Misture todos os ingredientes com um pouco de água ou leite até formar uma massa. Despeje na frigideira quente.",
	},
}
