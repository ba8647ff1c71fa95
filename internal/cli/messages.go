package cli

// User-facing text of the menu dialogue.
const (
	menuHeader  = "\n--- Gestor de Tareas ---\n"
	menuPrompt  = "Seleccione una opción: "
	listHeader  = "\nLista de Tareas:\n"
	msgNoTasks  = "No hay tareas registradas.\n"
	msgBadIndex = "Número de tarea inválido.\n"
	msgBadMenu  = "Opción no válida. Intente de nuevo.\n"
	msgExit     = "Saliendo del programa...\n"

	promptDescription = "Ingrese la descripción de la tarea: "
	msgAdded          = "Tarea agregada exitosamente.\n"

	promptComplete = "Ingrese el número de la tarea a completar: "
	msgCompleted   = "Tarea marcada como completada.\n"

	promptDelete = "Ingrese el número de la tarea a eliminar: "
	msgDeleted   = "Tarea eliminada exitosamente.\n"
)
