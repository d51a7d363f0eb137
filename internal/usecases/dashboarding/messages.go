package dashboarding

// Mensagens exibidas ao usuário conforme o desfecho da renderização
const (
	MessageNoData            = "Nenhum dado disponível para exibir."
	MessageConnectionFailure = "Erro ao executar a consulta no banco de vendas."
	MessageGoalsUnavailable  = "Não foi possível carregar a tabela de metas."
)
