// Package knowledge holds the static per-category reference tables: source
// citations, code example links, and templated answer builders. Everything
// here is immutable data loaded at process start.
package knowledge

import (
	"docnav/internal/models"
)

var sourcesByCategory = map[models.Category][]models.SourceReference{
	models.CategoryMIGConfig: {
		{Title: "NVIDIA Multi-Instance GPU User Guide", URL: "https://docs.nvidia.com/datacenter/tesla/mig-user-guide/", Relevance: 0.95},
		{Title: "MIG Support in Kubernetes", URL: "https://docs.nvidia.com/datacenter/cloud-native/kubernetes/latest/index.html", Relevance: 0.85},
		{Title: "NVIDIA Data Center GPU Documentation", URL: "https://docs.nvidia.com/datacenter/", Relevance: 0.7},
	},
	models.CategoryNVLink: {
		{Title: "NVLink and NVSwitch Overview", URL: "https://www.nvidia.com/en-us/data-center/nvlink/", Relevance: 0.9},
		{Title: "NVIDIA Fabric Manager User Guide", URL: "https://docs.nvidia.com/datacenter/tesla/fabric-manager-user-guide/", Relevance: 0.8},
		{Title: "CUDA Peer Device Memory Access", URL: "https://docs.nvidia.com/cuda/cuda-c-programming-guide/index.html#peer-to-peer-memory-access", Relevance: 0.75},
	},
	models.CategoryTensorRT: {
		{Title: "TensorRT Developer Guide", URL: "https://docs.nvidia.com/deeplearning/tensorrt/developer-guide/", Relevance: 0.95},
		{Title: "TensorRT Quick Start Guide", URL: "https://docs.nvidia.com/deeplearning/tensorrt/quick-start-guide/", Relevance: 0.85},
		{Title: "Working with ONNX Models", URL: "https://docs.nvidia.com/deeplearning/tensorrt/developer-guide/index.html#onnx", Relevance: 0.75},
	},
	models.CategoryNeMo: {
		{Title: "NeMo Framework User Guide", URL: "https://docs.nvidia.com/nemo-framework/user-guide/latest/", Relevance: 0.95},
		{Title: "NeMo ASR Documentation", URL: "https://docs.nvidia.com/deeplearning/nemo/user-guide/docs/en/stable/asr/intro.html", Relevance: 0.8},
	},
	models.CategoryTriton: {
		{Title: "Triton Inference Server Documentation", URL: "https://docs.nvidia.com/deeplearning/triton-inference-server/user-guide/", Relevance: 0.95},
		{Title: "Triton Model Repository", URL: "https://docs.nvidia.com/deeplearning/triton-inference-server/user-guide/docs/user_guide/model_repository.html", Relevance: 0.8},
	},
	models.CategoryCUDAProfiling: {
		{Title: "Nsight Systems User Guide", URL: "https://docs.nvidia.com/nsight-systems/UserGuide/", Relevance: 0.9},
		{Title: "Nsight Compute Documentation", URL: "https://docs.nvidia.com/nsight-compute/", Relevance: 0.9},
		{Title: "CUDA Best Practices Guide", URL: "https://docs.nvidia.com/cuda/cuda-c-best-practices-guide/", Relevance: 0.75},
	},
	models.CategoryCUDAGeneral: {
		{Title: "CUDA C++ Programming Guide", URL: "https://docs.nvidia.com/cuda/cuda-c-programming-guide/", Relevance: 0.95},
		{Title: "CUDA Toolkit Documentation", URL: "https://docs.nvidia.com/cuda/", Relevance: 0.85},
		{Title: "CUDA C++ Best Practices Guide", URL: "https://docs.nvidia.com/cuda/cuda-c-best-practices-guide/", Relevance: 0.75},
	},
	models.CategoryGeneric: {
		{Title: "NVIDIA Developer Documentation", URL: "https://docs.nvidia.com/", Relevance: 0.6},
		{Title: "NVIDIA Developer Forums", URL: "https://forums.developer.nvidia.com/", Relevance: 0.5},
	},
}

// Sources returns the citation list for a category. Unknown categories get
// the generic entries so callers always have at least one citation.
func Sources(cat models.Category) []models.SourceReference {
	if refs, ok := sourcesByCategory[cat]; ok && len(refs) > 0 {
		return refs
	}
	return sourcesByCategory[models.CategoryGeneric]
}
