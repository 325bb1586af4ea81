package repository

import "encoding/json"

// defaultTranslations are the documents loaded on first start so the
// frontend has something to render before any editor touches the store.
var defaultTranslations = map[string]json.RawMessage{
	"en": json.RawMessage(`{
  "title": "InvestPro",
  "subtitle": "Smart Investment Platform",
  "language": "Language",
  "hero": {
    "title": "Invest Smart, Grow Faster",
    "subtitle": "Access the best investment opportunities with real-time market data and expert analysis",
    "cta": "Start Investing",
    "learn_more": "Learn More"
  },
  "exchange": {
    "title": "USD/BRL Exchange Rate",
    "last_update": "Last update",
    "high": "High",
    "low": "Low",
    "variation": "Variation"
  },
  "features": {
    "title": "Why Choose InvestPro?",
    "realtime": {
      "title": "Real-time Data",
      "description": "Access live market data and exchange rates updated every minute"
    },
    "analysis": {
      "title": "Expert Analysis",
      "description": "Get insights from our team of financial experts and market analysts"
    },
    "security": {
      "title": "Maximum Security",
      "description": "Your investments are protected with bank-level security and encryption"
    }
  },
  "cta": {
    "title": "Ready to Start Investing?",
    "description": "Join thousands of investors who trust InvestPro for their financial growth",
    "button": "Open Account"
  },
  "footer": {
    "rights": "All rights reserved",
    "terms": "Terms of Service",
    "privacy": "Privacy Policy",
    "contact": "Contact"
  }
}`),
	"pt": json.RawMessage(`{
  "title": "InvestPro",
  "subtitle": "Plataforma de Investimentos Inteligente",
  "language": "Idioma",
  "hero": {
    "title": "Invista Inteligente, Cresça Mais Rápido",
    "subtitle": "Acesse as melhores oportunidades de investimento com dados de mercado em tempo real e análises especializadas",
    "cta": "Começar a Investir",
    "learn_more": "Saiba Mais"
  },
  "exchange": {
    "title": "Cotação USD/BRL",
    "last_update": "Última atualização",
    "high": "Máxima",
    "low": "Mínima",
    "variation": "Variação"
  },
  "features": {
    "title": "Por que Escolher a InvestPro?",
    "realtime": {
      "title": "Dados em Tempo Real",
      "description": "Acesse dados de mercado ao vivo e cotações atualizadas a cada minuto"
    },
    "analysis": {
      "title": "Análise Especializada",
      "description": "Obtenha insights de nossa equipe de especialistas financeiros e analistas de mercado"
    },
    "security": {
      "title": "Máxima Segurança",
      "description": "Seus investimentos são protegidos com segurança e criptografia de nível bancário"
    }
  },
  "cta": {
    "title": "Pronto para Começar a Investir?",
    "description": "Junte-se a milhares de investidores que confiam na InvestPro para seu crescimento financeiro",
    "button": "Abrir Conta"
  },
  "footer": {
    "rights": "Todos os direitos reservados",
    "terms": "Termos de Serviço",
    "privacy": "Política de Privacidade",
    "contact": "Contato"
  }
}`),
}
