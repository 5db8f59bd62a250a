package repository

import "github.com/jhoicas/practica-api/internal/domain/entity"

// TaskRepository tareas; el dueño no se valida.
type TaskRepository interface {
	CRUD[entity.Task]
}
