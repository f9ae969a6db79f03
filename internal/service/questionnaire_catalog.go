package service

import (
	"sarrisk/internal/model"
	"sarrisk/internal/strategy"
)

// Questionnaire variants shipped with the server
const (
	VariantEnglish = "en"
	VariantSpanish = "es"
)

func prompts(pairs ...string) []model.ItemPrompt {
	items := make([]model.ItemPrompt, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		items = append(items, model.ItemPrompt{Title: pairs[i], Subtitle: pairs[i+1]})
	}
	return items
}

// BuiltinQuestionnaires returns the questionnaire definitions served when
// the database has none for a type and variant.
func BuiltinQuestionnaires() []model.Questionnaire {
	return []model.Questionnaire{
		{
			Type:    strategy.TypeORMA,
			Variant: VariantEnglish,
			Title:   "Operational Risk Management Analysis",
			Items: prompts(
				"Supervision", "Is there a qualified supervisor who is not directly involved in the task?",
				"Planning", "How much information and time were available to plan the mission?",
				"Contingency Resources", "Are backup resources available and able to respond in time?",
				"Communication", "Can every team member reach command and each other reliably?",
				"Team Selection", "Do team members have the training and experience the mission requires?",
				"Team Fitness", "Are members rested and physically and mentally ready?",
				"Environment", "How much do weather, terrain and daylight add to the risk?",
				"Incident Complexity", "How complex is the mission and how long will exposure last?",
			),
		},
		{
			Type:    strategy.TypeORMA,
			Variant: VariantSpanish,
			Title:   "Análisis de Gestión del Riesgo Operacional",
			Items: prompts(
				"Supervisión", "¿Hay un supervisor cualificado que no participe directamente en la tarea?",
				"Planificación", "¿Cuánta información y tiempo hubo para planificar la misión?",
				"Recursos de Contingencia", "¿Hay recursos de apoyo disponibles que puedan responder a tiempo?",
				"Comunicación", "¿Todos los miembros pueden comunicarse con el mando y entre sí?",
				"Selección del Equipo", "¿Tienen los miembros la formación y experiencia que exige la misión?",
				"Estado del Equipo", "¿Están los miembros descansados y en condiciones físicas y mentales?",
				"Entorno", "¿Cuánto riesgo añaden el clima, el terreno y la luz?",
				"Complejidad del Incidente", "¿Qué complejidad tiene la misión y cuánto durará la exposición?",
			),
		},
		{
			Type:    strategy.TypePEACE,
			Variant: VariantEnglish,
			Title:   "PEACE",
			Items: prompts(
				"Planning", "Is there enough time and information to plan?",
				"Event Complexity", "How complex is the event and how many tasks run at once?",
				"Asset Selection", "Are the right people and equipment assigned?",
				"Communications", "Are communications with all units reliable?",
				"Environmental Conditions", "How severe are weather, sea state and visibility?",
				"Team Fitness", "Is the team rested and fit for the task?",
			),
		},
		{
			Type:    strategy.TypePEACE,
			Variant: VariantSpanish,
			Title:   "PEACE",
			Items: prompts(
				"Planificación", "¿Hay tiempo e información suficientes para planificar?",
				"Complejidad del Evento", "¿Qué complejidad tiene el evento y cuántas tareas simultáneas hay?",
				"Selección de Medios", "¿Están asignadas las personas y el equipo adecuados?",
				"Comunicaciones", "¿Son fiables las comunicaciones con todas las unidades?",
				"Condiciones Ambientales", "¿Qué gravedad tienen el clima, el estado del mar y la visibilidad?",
				"Estado del Equipo", "¿Está el equipo descansado y apto para la tarea?",
			),
		},
		{
			Type:    strategy.TypeSPE,
			Variant: VariantEnglish,
			Title:   "Severity, Probability, Exposure",
			Items: prompts(
				"Severity", "What is the worst credible outcome if the hazard occurs?",
				"Probability", "How likely is it that the hazard leads to that outcome?",
				"Exposure", "How often or how long are people exposed to the hazard?",
			),
		},
		{
			Type:    strategy.TypeSPE,
			Variant: VariantSpanish,
			Title:   "Gravedad, Probabilidad, Exposición",
			Items: prompts(
				"Gravedad", "¿Cuál es el peor resultado creíble si ocurre el peligro?",
				"Probabilidad", "¿Qué probabilidad hay de que el peligro produzca ese resultado?",
				"Exposición", "¿Con qué frecuencia o durante cuánto tiempo se está expuesto al peligro?",
			),
		},
	}
}
