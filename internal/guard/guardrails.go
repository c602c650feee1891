package guard

import (
	"strings"

	log "github.com/sirupsen/logrus"
)

// allowedTopics marks a query as on-topic when any of them appears.
var allowedTopics = []string{
	"cuda", "gpu", "nvidia", "tensorrt", "mig", "nvlink", "triton",
	"nemo", "rapids", "riva", "deepstream", "jetson", "dgx", "hpc",
	"machine learning", "deep learning", "inference", "training",
	"driver", "toolkit", "sdk", "api", "documentation", "programming",
}

// blockedPatterns are jailbreak or data-exfiltration phrasings that are
// rejected outright.
var blockedPatterns = []string{
	"ignore your instructions",
	"pretend you are",
	"forget your guidelines",
	"internal nvidia",
	"unreleased product",
	"confidential",
	"secret",
	"bypass",
	"ignore previous",
}

// generalTerms let plausibly on-topic questions through even without a
// product keyword ("how do I configure ...").
var generalTerms = []string{
	"how", "what", "why", "configure", "setup", "install", "error", "help", "guide",
}

const jailbreakMessage = "I can only provide information from official, public NVIDIA documentation. " +
	"I cannot bypass my guidelines or share internal/unreleased information. " +
	"How can I help you with official NVIDIA technologies like CUDA, TensorRT, or MIG?"

const offTopicMessage = "I'm the NVIDIA Doc Navigator, specialized in NVIDIA technologies including:\n\n" +
	"• **CUDA** - GPU programming and optimization\n" +
	"• **TensorRT** - Deep learning inference optimization\n" +
	"• **MIG** - Multi-Instance GPU configuration\n" +
	"• **NVLink** - Multi-GPU interconnect\n" +
	"• **Triton** - Inference server deployment\n" +
	"• **NeMo** - NLP and speech AI framework\n\n" +
	"How can I help you with NVIDIA technologies today?"

// Guardrails applies input and output topic checks. Disabled guardrails
// pass everything through unchanged.
type Guardrails struct {
	enabled bool
}

// NewGuardrails creates a Guardrails instance.
func NewGuardrails(enabled bool) *Guardrails {
	return &Guardrails{enabled: enabled}
}

// CheckInput reports whether the query passes the rails. When it does not,
// the returned message is the full user-facing rejection answer.
func (g *Guardrails) CheckInput(query string) (bool, string) {
	if !g.enabled {
		return true, ""
	}

	lowered := strings.ToLower(query)
	for _, pattern := range blockedPatterns {
		if strings.Contains(lowered, pattern) {
			log.Warnf("guardrails: blocked pattern detected: %q", pattern)
			return false, jailbreakMessage
		}
	}

	for _, topic := range allowedTopics {
		if strings.Contains(lowered, topic) {
			return true, ""
		}
	}
	for _, term := range generalTerms {
		if strings.Contains(lowered, term) {
			return true, ""
		}
	}

	log.Infof("guardrails: off-topic query rejected")
	return false, offTopicMessage
}

// CheckOutput appends a documentation pointer when the answer cites
// nothing from the official docs or repos.
func (g *Guardrails) CheckOutput(answer string) string {
	if !g.enabled {
		return answer
	}
	lowered := strings.ToLower(answer)
	if strings.Contains(lowered, "docs.nvidia.com") || strings.Contains(lowered, "github.com/nvidia") {
		return answer
	}
	return answer + "\n\n*For more details, visit the official documentation at [docs.nvidia.com](https://docs.nvidia.com)*"
}
