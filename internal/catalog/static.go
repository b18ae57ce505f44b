package catalog

import "reis-dos-frangos/internal/models"

// menuItems is the house menu, in the order the storefront renders it.
var menuItems = []models.MenuItem{
	// Entradas & grelhados
	{ID: "1", Name: "Frango à Passarinho", Price: 3500, Category: models.Grelhados, Description: "Porção crocante temperada com alho e ervas finas."},
	{ID: "2", Name: "Asinha BBQ", Price: 5000, Category: models.Grelhados, Description: "Grelhadas lentamente com nosso molho barbecue artesanal.", Popular: true},
	{ID: "3", Name: "Asinha Sweet Chilli", Price: 5000, Category: models.Grelhados, Description: "Toque picante e adocicado para paladares exigentes."},
	{ID: "4", Name: "Meio Frango no Churrasco", Price: 6000, Category: models.Grelhados, Description: "Meia porção do nosso clássico frango na brasa."},
	{ID: "5", Name: "Frango Inteiro no Churrasco", Price: 11500, Category: models.Grelhados, Popular: true, Description: "O rei da casa. Frango inteiro suculento e perfeitamente grelhado."},

	// Pratos especiais
	{ID: "6", Name: "Frango Composto", Description: "Servido com arroz soltinho, feijão preto e batata frita crocante.", Price: 10000, Category: models.Especiais, Popular: true},
	{ID: "7", Name: "Bitoque de Frango", Description: "Bife de frango grelhado na hora, servido com ovo estrelado.", Price: 9500, Category: models.Especiais},
	{ID: "8", Name: "Bitoque", Description: "Bife da vazia grelhado com ovo e guarnição completa.", Price: 13000, Category: models.Especiais},
	{ID: "9", Name: "Costela / Entrecosto", Description: "Grelhado na brasa com nosso exclusivo molho de especiarias.", Price: 6500, Category: models.Especiais},

	// Peixes grelhados
	{ID: "10", Name: "Peixe Grelhado", Description: "Tarapau ou Croaker fresco, temperado com limão e sal grosso.", Price: 7000, Category: models.Peixes},
	{ID: "11", Name: "Peixe Composto", Description: "Peixe fresco servido com legumes ao vapor, ovo e salada.", Price: 9500, Category: models.Peixes},

	// Hambúrgueres e saladas
	{ID: "12", Name: "Hambúrguer de Frango", Description: "Pão brioche, carne de frango grelhada, alface, tomate e batata frita.", Price: 4000, Category: models.Hamburgueres},
	{ID: "13", Name: "Hambúrguer Simples", Description: "Pão premium, carne bovina suculenta e queijo derretido.", Price: 4500, Category: models.Hamburgueres},
	{ID: "14", Name: "Salada Simples", Description: "Mix de folhas verdes sazonais e tomates frescos.", Price: 5000, Category: models.Hamburgueres},
	{ID: "15", Name: "Salada Caesar", Description: "Folhas frescas, croutons crocantes e molho caesar caseiro.", Price: 8000, Category: models.Hamburgueres},

	// Acompanhamentos
	{ID: "16", Name: "Arroz Branco", Price: 350, Category: models.Acompanhamentos},
	{ID: "17", Name: "Arroz de Cenoura", Price: 300, Category: models.Acompanhamentos},
	{ID: "18", Name: "Feijão Preto", Price: 600, Category: models.Acompanhamentos},
	{ID: "19", Name: "French Fries", Price: 2900, Category: models.Acompanhamentos},
	{ID: "20", Name: "Mix de Mandioca", Price: 350, Category: models.Acompanhamentos},
	{ID: "21", Name: "Feijão de Dendê", Price: 500, Category: models.Acompanhamentos},
	{ID: "22", Name: "Funje de Milho", Price: 400, Category: models.Acompanhamentos},
	{ID: "23", Name: "Sopa de Legumes", Price: 2100, Category: models.Acompanhamentos},
}

// fallbackDescriptions fills the gap for items the menu data leaves undescribed
var fallbackDescriptions = map[models.Category]string{
	models.Grelhados:       "O sabor clássico da nossa brasa, preparado com maestria.",
	models.Especiais:       "Prato completo preparado na hora pela nossa cozinha.",
	models.Peixes:          "Peixe fresco do dia, grelhado no ponto certo.",
	models.Hamburgueres:    "Feito na hora com ingredientes frescos.",
	models.Acompanhamentos: "O acompanhamento perfeito para o seu churrasco.",
}

const genericDescription = "O sabor clássico da nossa brasa, preparado com maestria."
