package component

// SoundRequest asks the audio collaborator to start or stop a named sound.
type SoundRequest struct {
	Name string
	Stop bool
}

// SoundQueue collects fire-and-forget requests until the audio system drains them.
type SoundQueue struct {
	Requests []SoundRequest
}

var SoundQueueComponent = NewComponent[SoundQueue]()

func (q *SoundQueue) Play(name string) {
	q.Requests = append(q.Requests, SoundRequest{Name: name})
}

func (q *SoundQueue) Stop(name string) {
	q.Requests = append(q.Requests, SoundRequest{Name: name, Stop: true})
}
