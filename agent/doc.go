// Package agent is the ProofAI SDK surface imported by agent code running on
// the hub. The host runtime constructs a Context once per process with the
// environment variables, user variables, and chat history for the run; agent
// code reads them through the accessors and talks back to the host through
// SendMessage and CallAgent, which emit structured notifications on the
// context's HostChannel.
package agent
