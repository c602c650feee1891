package knowledge

import (
	"docnav/internal/models"
)

// OfficialRepos lists the GitHub repositories live code search is scoped to.
var OfficialRepos = []string{
	"NVIDIA/cuda-samples",
	"NVIDIA/TensorRT",
	"NVIDIA/NeMo",
	"triton-inference-server/server",
	"NVIDIA/cutlass",
	"NVIDIA/DeepLearningExamples",
}

var examplesByCategory = map[models.Category][]models.CodeExample{
	models.CategoryMIGConfig: {
		{Name: "mig-parted", Path: "examples/config.yaml", Repo: "NVIDIA/mig-parted", URL: "https://github.com/NVIDIA/mig-parted/blob/main/examples/config.yaml", Description: "Declarative MIG partition configuration"},
	},
	models.CategoryTensorRT: {
		{Name: "sampleOnnxMNIST.cpp", Path: "samples/sampleOnnxMNIST/sampleOnnxMNIST.cpp", Repo: "NVIDIA/TensorRT", URL: "https://github.com/NVIDIA/TensorRT/blob/main/samples/sampleOnnxMNIST/sampleOnnxMNIST.cpp", Description: "ONNX model import and engine build"},
		{Name: "quickstart IntroNotebooks", Path: "quickstart/IntroNotebooks", Repo: "NVIDIA/TensorRT", URL: "https://github.com/NVIDIA/TensorRT/tree/main/quickstart/IntroNotebooks", Description: "Getting-started notebooks for TensorRT"},
	},
	models.CategoryNeMo: {
		{Name: "speech_to_text.py", Path: "examples/asr/asr_ctc/speech_to_text_ctc.py", Repo: "NVIDIA/NeMo", URL: "https://github.com/NVIDIA/NeMo/blob/main/examples/asr/asr_ctc/speech_to_text_ctc.py", Description: "ASR training example"},
	},
	models.CategoryTriton: {
		{Name: "simple_grpc_infer_client.py", Path: "src/python/examples/simple_grpc_infer_client.py", Repo: "triton-inference-server/client", URL: "https://github.com/triton-inference-server/client/blob/main/src/python/examples/simple_grpc_infer_client.py", Description: "Minimal gRPC inference client"},
	},
	models.CategoryCUDAProfiling: {
		{Name: "bandwidthTest.cu", Path: "Samples/1_Utilities/bandwidthTest/bandwidthTest.cu", Repo: "NVIDIA/cuda-samples", URL: "https://github.com/NVIDIA/cuda-samples/blob/master/Samples/1_Utilities/bandwidthTest/bandwidthTest.cu", Description: "Memory bandwidth measurement"},
	},
	models.CategoryCUDAGeneral: {
		{Name: "vectorAdd.cu", Path: "Samples/0_Introduction/vectorAdd/vectorAdd.cu", Repo: "NVIDIA/cuda-samples", URL: "https://github.com/NVIDIA/cuda-samples/blob/master/Samples/0_Introduction/vectorAdd/vectorAdd.cu", Description: "Introductory CUDA kernel"},
		{Name: "matrixMul.cu", Path: "Samples/0_Introduction/matrixMul/matrixMul.cu", Repo: "NVIDIA/cuda-samples", URL: "https://github.com/NVIDIA/cuda-samples/blob/master/Samples/0_Introduction/matrixMul/matrixMul.cu", Description: "Shared-memory tiled matrix multiply"},
	},
}

// Examples returns the static code example list for a category. Categories
// without examples get an empty list, never nil.
func Examples(cat models.Category) []models.CodeExample {
	if ex, ok := examplesByCategory[cat]; ok {
		return ex
	}
	return []models.CodeExample{}
}
