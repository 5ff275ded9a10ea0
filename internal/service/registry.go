package service

import (
	"sync"

	"github.com/google/uuid"
)

// AgentRegistry holds the live cognitive agents by id.
type AgentRegistry struct {
	mu     sync.RWMutex
	agents map[uuid.UUID]*CognitiveAgent
}

func NewAgentRegistry() *AgentRegistry {
	return &AgentRegistry{agents: make(map[uuid.UUID]*CognitiveAgent)}
}

// Register adds an agent to the registry.
func (r *AgentRegistry) Register(agent *CognitiveAgent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.agents[agent.ID] = agent
}

// Get returns the agent with the given id.
func (r *AgentRegistry) Get(id uuid.UUID) (*CognitiveAgent, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	agent, ok := r.agents[id]
	return agent, ok
}

// Len returns the number of registered agents.
func (r *AgentRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.agents)
}
